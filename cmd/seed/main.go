package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"imobiliare/internal/database"
	"imobiliare/internal/domain"
	"imobiliare/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "imobiliare.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM wishlists")
	db.Exec("DELETE FROM apartments")
	db.Exec("DELETE FROM owners")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	owners := repository.NewOwnerRepository(db)
	users := repository.NewUserRepository(db)
	apartments := repository.NewApartmentRepository(db)
	wishlists := repository.NewWishlistRepository(db)

	log.Println("Creating owners...")
	popescu := &domain.Owner{Name: "Ion Popescu", Email: "ion.popescu@example.com", Phone: "+40721000001"}
	ionescu := &domain.Owner{Name: "Maria Ionescu", Email: "maria.ionescu@example.com", Phone: "+40721000002"}
	for _, o := range []*domain.Owner{popescu, ionescu} {
		if err := owners.Save(ctx, o); err != nil {
			log.Fatal("owner seed failed:", err)
		}
	}

	log.Println("Creating users...")
	ana := &domain.User{Name: "Ana Marin", Email: "ana.marin@example.com"}
	radu := &domain.User{Name: "Radu Stan", Email: "radu.stan@example.com"}
	for _, u := range []*domain.User{ana, radu} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("user seed failed:", err)
		}
	}

	log.Println("Creating apartments...")
	seedApartments := []*domain.Apartment{
		{Address: "Str. Avram Iancu 12", City: "Cluj-Napoca", Price: 95000, Surface: 54, Rooms: 2, Floor: 3, OwnerID: popescu.ID},
		{Address: "Bd. Unirii 40", City: "Bucuresti", Price: 150000, Surface: 78, Rooms: 3, Floor: 7, OwnerID: popescu.ID},
		{Address: "Str. Closca 5", City: "Timisoara", Price: 72000, Surface: 45, Rooms: 2, Floor: 1, OwnerID: ionescu.ID},
	}
	for _, ap := range seedApartments {
		if err := apartments.Save(ctx, ap); err != nil {
			log.Fatal("apartment seed failed:", err)
		}
	}

	log.Println("Creating wishlist entries...")
	entries := []*domain.Wishlist{
		{UserID: ana.ID, ApartmentID: seedApartments[0].ID},
		{UserID: ana.ID, ApartmentID: seedApartments[2].ID},
		{UserID: radu.ID, ApartmentID: seedApartments[0].ID},
	}
	for _, w := range entries {
		if err := wishlists.Create(ctx, w); err != nil {
			log.Fatal("wishlist seed failed:", err)
		}
	}

	log.Println("Seeding done.")
}
