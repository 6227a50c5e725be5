package locale

// Label keys used by the card templates.
const (
	LabelFeedbackHeading = "comment.heading"
	LabelPlaceholder     = "comment.placeholder"
	LabelPublish         = "comment.publish"
	LabelDelete          = "comment.delete"
	LabelInvalidComment  = "comment.invalid"
)

var ptBRLabels = map[string]string{
	LabelFeedbackHeading: "Deixe seu feedback",
	LabelPlaceholder:     "Escreva um comentário...",
	LabelPublish:         "Publicar",
	LabelDelete:          "Deletar comentário",
	LabelInvalidComment:  "EEEEEEEEEEEEEEEEEPA",
}

var enLabels = map[string]string{
	LabelFeedbackHeading: "Leave your feedback",
	LabelPlaceholder:     "Write a comment...",
	LabelPublish:         "Publish",
	LabelDelete:          "Delete comment",
	LabelInvalidComment:  "Whoa! Write something first",
}
