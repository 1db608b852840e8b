package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Clancy-dev/clancygraintracker/models"
	"github.com/Clancy-dev/clancygraintracker/pkg/kv"
	"github.com/Clancy-dev/clancygraintracker/pkg/userstore"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("usage: go run ./cmd/create_user <name> <email> <password> [role]")
		os.Exit(2)
	}
	name := os.Args[1]
	email := os.Args[2]
	password := os.Args[3]
	role := models.RoleUser
	if len(os.Args) > 4 {
		role = models.Role(os.Args[4])
	}

	var store kv.Store
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		pg, err := kv.OpenPostgres(dsn)
		if err != nil {
			log.Fatalf("failed to open postgres document store: %v", err)
		}
		store = pg
	} else {
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "data"
		}
		fs, err := kv.NewFileStore(dir)
		if err != nil {
			log.Fatalf("failed to open file document store: %v", err)
		}
		store = fs
	}

	us := userstore.New(store, nil)
	user, err := us.Signup(name, email, password, role)
	if err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	fmt.Printf("created user %s id=%s role=%s\n", user.Email, user.ID, user.Role)
}
