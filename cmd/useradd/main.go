package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/Skotchmaster/hospital/internal/migrations"
	"github.com/Skotchmaster/hospital/internal/mykafka"
	"github.com/Skotchmaster/hospital/internal/repo"
	"github.com/Skotchmaster/hospital/internal/service"
	"github.com/Skotchmaster/hospital/internal/transport"
	"github.com/Skotchmaster/hospital/internal/validate"
	"github.com/Skotchmaster/hospital/pkg/config"
	pkgdb "github.com/Skotchmaster/hospital/pkg/db"
)

func main() {
	_ = godotenv.Load()
	os.Exit(run())
}

// run returns the exit code so deferred cleanup happens before os.Exit.
func run() int {
	var req transport.CreateUserRequest
	migrate := flag.Bool("migrate", false, "apply migrations before creating the user")
	flag.StringVar(&req.Username, "username", "", "login name")
	flag.StringVar(&req.Email, "email", "", "email address")
	flag.StringVar(&req.Firstname, "firstname", "", "first name")
	flag.StringVar(&req.Lastname, "lastname", "", "last name")
	flag.StringVar(&req.PhoneNumber, "phone", "", "phone number")
	flag.StringVar(&req.Role, "role", "user", "admin, doctor, secretary or user")
	flag.Parse()

	password, err := readPassword()
	if err != nil {
		log.Printf("read password: %v", err)
		return 1
	}
	req.Password = password

	brokers, err := config.KafkaBrokers()
	if err != nil {
		log.Printf("config: %v", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := pkgdb.Open(ctx, config.MustDatabaseURL())
	if err != nil {
		log.Printf("db init error: %v", err)
		return 1
	}
	defer pkgdb.Close(db)

	if *migrate {
		if err := migrations.Apply(ctx, db); err != nil {
			log.Printf("migrate: %v", err)
			return 1
		}
	}

	events, closeEvents := mykafka.FromBrokers(brokers)
	defer func() {
		if err := closeEvents(); err != nil {
			log.Printf("kafka close: %v", err)
		}
	}()

	svc := &service.AuthService{Repo: repo.New(db), Events: events}
	user, err := svc.Provision(ctx, req)
	if err != nil {
		var verr *validate.Error
		switch {
		case errors.As(err, &verr):
			for _, f := range verr.Fields {
				fmt.Fprintf(os.Stderr, "%s: %s\n", f.Field, f.Message)
			}
			return 2
		case errors.Is(err, service.ErrConflict):
			log.Printf("username %q or email %q already registered", req.Username, req.Email)
		default:
			log.Printf("create user: %v", err)
		}
		return 1
	}

	fmt.Printf("created user %d (%s, role %s)\n", user.ID, user.Username, user.Role)
	return 0
}

// readPassword prompts without echo on a terminal and reads one line otherwise.
func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Password: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		return string(b), err
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
