// Command seed loads travel packages from a JSON file and optionally
// creates the admin account. It goes through the same validate package
// as the API, so bad data is rejected here instead of surfacing later.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"vibeholidays/auth"
	"vibeholidays/db"
	"vibeholidays/models"
	"vibeholidays/utils"
	"vibeholidays/validate"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	file := flag.String("packages", "", "JSON file with an array of package forms")
	adminUser := flag.String("admin-user", "", "create an admin account with this username")
	adminEmail := flag.String("admin-email", "", "email for the admin account")
	adminPass := flag.String("admin-pass", "", "password for the admin account")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx := context.Background()
	if err := db.Connect(ctx, mongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Disconnect(ctx)

	if *file != "" {
		if err := seedPackages(ctx, *file); err != nil {
			log.Fatalf("Seeding packages failed: %v", err)
		}
	}

	if *adminUser != "" {
		if err := createAdmin(ctx, *adminUser, *adminEmail, *adminPass); err != nil {
			log.Fatalf("Creating admin failed: %v", err)
		}
	}
}

func seedPackages(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var forms []validate.PackageForm
	if err := json.Unmarshal(data, &forms); err != nil {
		return err
	}

	inserted := 0
	for i, form := range forms {
		if err := validate.TravelPackage(form); err != nil {
			log.Printf("Skipping entry %d: %v", i, err)
			continue
		}

		name := strings.TrimSpace(form.Name)

		// Re-running the seed must not duplicate packages.
		err := db.PackagesCollection.FindOne(ctx, bson.M{
			"name":        name,
			"destination": strings.TrimSpace(form.Destination),
		}).Err()
		if err == nil {
			log.Printf("Skipping %q: already present", name)
			continue
		}
		if err != mongo.ErrNoDocuments {
			return err
		}

		active := true
		if form.Active != nil {
			active = *form.Active
		}

		now := time.Now()
		pkg := models.TravelPackage{
			PackageID:   "pkg" + utils.GenerateRandomString(10),
			Name:        name,
			Destination: strings.TrimSpace(form.Destination),
			Duration:    form.Duration,
			Price:       form.Price,
			Description: strings.TrimSpace(form.Description),
			Itinerary:   orEmpty(form.Itinerary),
			Inclusions:  orEmpty(form.Inclusions),
			Exclusions:  orEmpty(form.Exclusions),
			Images:      orEmpty(form.Images),
			Active:      active,
			Featured:    form.Featured,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if _, err := db.PackagesCollection.InsertOne(ctx, pkg); err != nil {
			return err
		}
		inserted++
	}

	log.Printf("Seeded %d of %d packages", inserted, len(forms))
	return nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func createAdmin(ctx context.Context, username, email, password string) error {
	if err := validate.Credentials(username, email, password); err != nil {
		return err
	}
	username = strings.TrimSpace(username)

	err := db.UserCollection.FindOne(ctx, bson.M{"username": username}).Err()
	if err == nil {
		log.Printf("Admin %q already exists", username)
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	user := models.User{
		UserID:       "u" + utils.GenerateRandomString(10),
		Username:     username,
		Email:        validate.NormalizeEmail(email),
		PasswordHash: hashed,
		Role:         "admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		return err
	}
	log.Printf("Created admin %q", username)
	return nil
}
