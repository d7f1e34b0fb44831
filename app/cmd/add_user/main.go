package main

import (
	"flag"
	"fmt"
	"os"

	"campus-events/app/config"
	"campus-events/app/models"
	"campus-events/app/routes/auth"
	"campus-events/app/services"
	"campus-events/app/store"
)

// Seeds an account directly into the snapshot file. Mainly used to create the
// first admin before the server has any users.
func main() {
	username := flag.String("username", "admin", "account username")
	email := flag.String("email", "admin@campus.local", "account email")
	password := flag.String("password", "", "account password (required)")
	role := flag.String("role", "admin", "account role: student, organizer or admin")
	department := flag.String("department", "", "department (organizers)")
	flag.Parse()

	if *password == "" {
		fmt.Println("A password is required: -password <value>")
		os.Exit(1)
	}

	cfg := config.Load()
	st, err := store.Load(cfg.DataFile, store.FileSaver{Path: cfg.DataFile})
	if err != nil {
		fmt.Printf("Failed to load data store: %v\n", err)
		os.Exit(1)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	users := services.NewUserService(st)
	user, err := users.Create(*username, *email, hash, models.Role(*role), *department)
	if err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s (%s, %s)\n", user.Username, user.Email, user.Role)
}
