package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"postcard/app/repositories"
	"postcard/app/services"
)

var osExit = os.Exit

// HandleDBCommand handles the db maintenance subcommands and returns an
// exit code. The commands work on the badger store at BADGER_PATH, the
// same one `serve --store badger` opens.
func HandleDBCommand(args []string) int {
	if len(args) < 1 {
		printDBHelp()
		osExit(1)
		return 1
	}

	cmd := args[0]
	switch cmd {
	case "help":
		printDBHelp()
		return 0
	case "clean", "init", "backup", "restore":
	default:
		fmt.Printf("Unknown db command: %s\n\n", cmd)
		printDBHelp()
		osExit(1)
		return 1
	}

	if cmd == "restore" && len(args) < 2 {
		fmt.Println("Error: backup file path required for restore")
		osExit(1)
		return 1
	}

	path, err := badgerPath()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		osExit(1)
		return 1
	}

	var code int
	switch cmd {
	case "clean":
		code = clean(path)
	case "init":
		postsFile := ""
		if len(args) > 2 && args[1] == "--posts" {
			postsFile = args[2]
		}
		code = initDb(path, postsFile)
	case "backup":
		code = backup(path)
	case "restore":
		code = restore(path, args[1])
	}
	if code != 0 {
		osExit(code)
	}
	return code
}

func printDBHelp() {
	helpText := `Usage: postcard db <command>

Commands:
  init [--posts <file>]   Initialize a new database, optionally seeded with posts
  clean                   Remove the database
  backup                  Create a backup of the database
  restore <file>          Restore database from backup
  help                    Display this help message
`
	fmt.Println(helpText)
}

// clean removes the database.
func clean(dbPath string) int {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return 0
	}

	fmt.Print("Are you sure you want to clean the database? All posts and comments will be lost. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return 0
	}

	if err := os.RemoveAll(dbPath); err != nil {
		fmt.Printf("Failed to clean database: %v\n", err)
		return 1
	}
	fmt.Println("Database cleaned successfully")
	return 0
}

// initDb creates the database and loads posts from postsFile when given.
func initDb(dbPath, postsFile string) int {
	if _, err := os.Stat(dbPath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return 1
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		fmt.Printf("Failed to create database directory: %v\n", err)
		return 1
	}

	store, err := repositories.OpenBadgerStore(dbPath)
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		return 1
	}
	defer store.Close()

	if postsFile != "" {
		n, err := services.NewPostService(store.Posts).LoadPostsFile(postsFile)
		if err != nil {
			fmt.Printf("Failed to load posts: %v\n", err)
			return 1
		}
		fmt.Printf("Loaded %d posts from %s\n", n, postsFile)
	}

	fmt.Println("Database initialized successfully")
	return 0
}

// backup writes a dump of the database into a backups directory next to
// it.
func backup(dbPath string) int {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return 1
	}

	backupDir := filepath.Join(filepath.Dir(dbPath), "backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		fmt.Printf("Failed to create backup directory: %v\n", err)
		return 1
	}

	store, err := repositories.OpenBadgerStore(dbPath)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer store.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		fmt.Printf("Failed to create backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	if err := store.Backup(f); err != nil {
		fmt.Printf("Failed to backup database: %v\n", err)
		return 1
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
	return 0
}

// restore replaces the database with the contents of backupFile.
func restore(dbPath, backupFile string) int {
	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return 1
	}

	if _, err := os.Stat(dbPath); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return 1
		}
		if err := os.RemoveAll(dbPath); err != nil {
			fmt.Printf("Failed to remove existing database: %v\n", err)
			return 1
		}
	}

	f, err := os.Open(backupFile)
	if err != nil {
		fmt.Printf("Failed to open backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		fmt.Printf("Failed to stat backup file: %v\n", err)
		return 1
	}
	if fi.Size() == 0 {
		fmt.Printf("Backup file is empty: %s\n", backupFile)
		return 1
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		fmt.Printf("Failed to create database directory: %v\n", err)
		return 1
	}

	store, err := repositories.OpenBadgerStore(dbPath)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer store.Close()

	err = func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic occurred during restore: %v", r)
			}
		}()
		return store.Restore(f)
	}()
	if err != nil {
		fmt.Printf("Failed to restore database: %v\n", err)
		return 1
	}

	fmt.Println("Database restored successfully")
	return 0
}
