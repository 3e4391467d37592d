package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mreyes/gearvault-backend/internal/client"
)

const usage = `Usage: gearvault <command> [flags]

Commands:
  register   -name -email -password    create an account
  login      -email -password          log in
  logout                               log out
  whoami                               show the current user
  forgot     -email                    request a password reset token
  reset      -token -password          redeem a password reset token
  gear                                 list your gear
  gear-add   -name -type               add a gear item
  gear-rm    -id                       delete a gear item
  reminders                            list your reminders
  complete   -id                       mark a reminder done
`

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	baseURL := os.Getenv("GEARVAULT_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	tokenPath, err := client.DefaultTokenPath()
	if err != nil {
		log.Fatalf("cannot resolve token path: %v", err)
	}

	api := client.NewAPI(baseURL)
	session := client.NewSession(api, tokenPath)
	if err := session.Start(); err != nil {
		log.Fatalf("session: %v", err)
	}

	command := os.Args[1]
	args := os.Args[2:]

	if err := run(command, args, api, session); err != nil {
		log.Fatalf("error: %v", err)
	}
}

func run(command string, args []string, api *client.API, session *client.Session) error {
	switch command {
	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		name := fs.String("name", "", "full name")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		fs.Parse(args)
		if err := session.Register(*name, *email, *password); err != nil {
			return err
		}
		fmt.Printf("registered as %s\n", session.User().Email)
		return nil

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		fs.Parse(args)
		if err := session.Login(*email, *password); err != nil {
			return err
		}
		fmt.Printf("logged in as %s\n", session.User().Email)
		return nil

	case "logout":
		if err := session.Logout(); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	case "whoami":
		if err := session.Require(); err != nil {
			return err
		}
		user := session.User()
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil

	case "forgot":
		fs := flag.NewFlagSet("forgot", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		fs.Parse(args)
		token, err := api.ForgotPassword(*email)
		if err != nil {
			return err
		}
		fmt.Printf("reset token: %s\n", token)
		return nil

	case "reset":
		fs := flag.NewFlagSet("reset", flag.ExitOnError)
		token := fs.String("token", "", "reset token")
		password := fs.String("password", "", "new password")
		fs.Parse(args)
		if err := api.ResetPassword(*token, *password); err != nil {
			return err
		}
		fmt.Println("password reset")
		return nil

	case "gear":
		if err := session.Require(); err != nil {
			return err
		}
		items, err := api.ListGear()
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("no gear yet")
			return nil
		}
		for _, g := range items {
			fmt.Printf("%s  %-12s %s %s\n", g.ID, g.Type, g.Brand, g.Name)
		}
		return nil

	case "gear-add":
		if err := session.Require(); err != nil {
			return err
		}
		fs := flag.NewFlagSet("gear-add", flag.ExitOnError)
		name := fs.String("name", "", "gear name")
		gearType := fs.String("type", "", "gear type")
		fs.Parse(args)
		gear, err := api.CreateGear(*name, *gearType)
		if err != nil {
			return err
		}
		fmt.Printf("created %s\n", gear.ID)
		return nil

	case "gear-rm":
		if err := session.Require(); err != nil {
			return err
		}
		fs := flag.NewFlagSet("gear-rm", flag.ExitOnError)
		id := fs.String("id", "", "gear id")
		fs.Parse(args)
		if err := api.DeleteGear(*id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil

	case "reminders":
		if err := session.Require(); err != nil {
			return err
		}
		items, err := api.ListReminders()
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("no reminders")
			return nil
		}
		for _, rem := range items {
			status := " "
			if rem.IsCompleted {
				status = "x"
			}
			fmt.Printf("[%s] %s  %s  %s\n", status, rem.ID, rem.DueDate.Format("2006-01-02"), rem.Title)
		}
		return nil

	case "complete":
		if err := session.Require(); err != nil {
			return err
		}
		fs := flag.NewFlagSet("complete", flag.ExitOnError)
		id := fs.String("id", "", "reminder id")
		fs.Parse(args)
		if _, err := api.CompleteReminder(*id); err != nil {
			return err
		}
		fmt.Println("completed")
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
