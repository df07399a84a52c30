package main

import (
	"log"

	"github.com/bounis0910/Att-School/app/config"
	"github.com/bounis0910/Att-School/app/database"
)

// Applies the schema without starting the server, for provisioning a
// fresh database.
func main() {
	log.Println("Starting manual migration...")

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Manual migration completed successfully!")
}
