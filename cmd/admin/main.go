package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gatherly/api/internal/config"
	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/repository"
	"github.com/gatherly/api/internal/service"
	"github.com/gatherly/api/pkg/jwt"
)

const usage = `Usage: admin <command> [flags]

Commands:
  create-tables   Define all tables, fields, and indexes
  drop-tables     Remove all tables and their records
  seed            Populate the database with sample data
  total-count     Sum reserved tickets for an event (-event <id>)
  token           Mint a development bearer token

Run 'admin <command> -h' for command flags.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	_ = godotenv.Load()

	var err error
	switch os.Args[1] {
	case "create-tables":
		err = runCreateTables(os.Args[2:])
	case "drop-tables":
		err = runDropTables(os.Args[2:])
	case "seed":
		err = runSeed(os.Args[2:])
	case "total-count":
		err = runTotalCount(os.Args[2:])
	case "token":
		err = runToken(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// connect loads configuration and opens a database connection. The
// returned cleanup closes the connection.
func connect(ctx context.Context) (*database.SurrealDB, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})
	if err := db.Connect(ctx); err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, func() { _ = db.Close() }, nil
}

func runCreateTables(args []string) error {
	fs := flag.NewFlagSet("create-tables", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	db, cleanup, err := connect(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := database.DefineSchema(ctx, db); err != nil {
		return fmt.Errorf("define schema: %w", err)
	}
	fmt.Println("Tables created.")
	return nil
}

func runDropTables(args []string) error {
	fs := flag.NewFlagSet("drop-tables", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	db, cleanup, err := connect(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := database.DropSchema(ctx, db); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	fmt.Println("Tables dropped.")
	return nil
}

func runSeed(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := context.Background()
	db, cleanup, err := connect(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	tokens, err := jwt.NewService(jwt.Config{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		return fmt.Errorf("init jwt service: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	eventRepo := repository.NewEventRepository(db)
	attendingRepo := repository.NewAttendingRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	auth := service.NewAuthService(userRepo, tokens)
	posts := service.NewPostService(postRepo, commentRepo, likeRepo, userRepo)
	events := service.NewEventService(eventRepo, attendingRepo, invoiceRepo, userRepo)
	attending := service.NewAttendingService(eventRepo, attendingRepo, invoiceRepo, userRepo)

	seeder := service.NewSeederService(auth, posts, events, attending, userRepo)
	result, err := seeder.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	fmt.Println("Database seeded")
	fmt.Println("===============")
	fmt.Printf("Users:      %d\n", result.Users)
	fmt.Printf("Posts:      %d\n", result.Posts)
	fmt.Printf("Comments:   %d\n", result.Comments)
	fmt.Printf("Likes:      %d\n", result.Likes)
	fmt.Printf("Events:     %d\n", result.Events)
	fmt.Printf("Attendings: %d\n", result.Attendings)
	return nil
}

func runTotalCount(args []string) error {
	fs := flag.NewFlagSet("total-count", flag.ExitOnError)
	eventID := fs.String("event", "", "Event record id (e.g. event:abc123)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *eventID == "" {
		return fmt.Errorf("missing required flag: -event")
	}

	ctx := context.Background()
	db, cleanup, err := connect(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	attendingRepo := repository.NewAttendingRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	events := service.NewEventService(eventRepo, attendingRepo, invoiceRepo, userRepo)
	total, err := events.TotalTickets(ctx, *eventID)
	if err != nil {
		fmt.Println("Could not compute the ticket total for that event.")
		return nil
	}

	fmt.Printf("Total tickets for %s: %d\n", *eventID, total)
	return nil
}

func runToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	userID := fs.String("user", "user:admin-dev", "User ID for the token")
	name := fs.String("name", "Admin Dev", "Display name for the token")
	email := fs.String("email", "admin@gatherly.app", "Email for the token")
	admin := fs.Bool("admin", true, "Mark the token as an admin token")
	expMins := fs.Int("exp", 60*24*7, "Token expiration in minutes")
	outputJSON := fs.Bool("json", false, "Output as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	tokens, err := jwt.NewService(jwt.Config{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: *expMins,
	})
	if err != nil {
		return fmt.Errorf("init jwt service: %w", err)
	}

	token, err := tokens.Sign(jwt.Claims{
		UserID:  *userID,
		Email:   *email,
		Name:    *name,
		IsAdmin: *admin,
	})
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}

	if *outputJSON {
		output := map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   *expMins * 60,
			"user_id":      *userID,
			"email":        *email,
			"is_admin":     *admin,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	expTime := time.Now().Add(time.Duration(*expMins) * time.Minute)
	fmt.Println("Token Generated")
	fmt.Println("===============")
	fmt.Printf("User ID:  %s\n", *userID)
	fmt.Printf("Email:    %s\n", *email)
	fmt.Printf("Admin:    %t\n", *admin)
	fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer <token>' http://localhost:%s/v1/auth/me\n", cfg.Server.Port)
	return nil
}
