// Command tracker is the terminal client: log in, record income and
// expenses, and watch the summary move.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rishab4242/Expense-Tracker-App/internal/client"
	"github.com/rishab4242/Expense-Tracker-App/internal/transaction"
)

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "base URL of the tracker API")
	token := flag.String("token", os.Getenv("TRACKER_TOKEN"), "bearer token (skips login)")
	flag.Parse()

	api := client.NewAPI(*apiURL)
	if *token != "" {
		api.SetToken(*token)
	}

	controller := client.NewController(api, func(n client.Notice) {
		switch n.Kind {
		case client.NoticeSuccess:
			fmt.Println("✔", n.Message)
		case client.NoticeError:
			fmt.Println("✖", n.Message)
		default:
			fmt.Println("•", n.Message)
		}
	})

	app := &app{
		api:        api,
		controller: controller,
		form:       client.NewForm(),
		in:         bufio.NewScanner(os.Stdin),
	}
	app.run()
}

type app struct {
	api        *client.API
	controller *client.Controller
	form       *client.Form
	in         *bufio.Scanner
}

func (a *app) run() {
	ctx := context.Background()

	fmt.Println("expense tracker — type 'help' for commands")
	if a.api.Token() != "" {
		a.refresh(ctx)
	}

	for {
		fmt.Print("> ")
		if !a.in.Scan() {
			return
		}
		fields := strings.Fields(a.in.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "help":
			a.help()
		case "signup":
			a.signup(ctx)
		case "login":
			a.login(ctx)
		case "show":
			a.show()
		case "add":
			a.add(ctx)
		case "edit":
			a.edit(ctx, args)
		case "delete":
			a.delete(ctx, args)
		case "refresh":
			a.refresh(ctx)
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command; type 'help'")
		}
	}
}

func (a *app) help() {
	fmt.Println(`commands:
  signup        create an account
  login         sign in
  show          dashboard + history
  add           add a transaction
  edit <id>     edit a transaction (id or prefix)
  delete <id>   delete a transaction (id or prefix)
  refresh       re-fetch the list from the server
  quit          leave`)
}

func (a *app) signup(ctx context.Context) {
	email := a.prompt("email: ")
	password := a.prompt("password: ")
	name := a.prompt("full name: ")
	if err := a.api.Signup(ctx, email, password, name); err != nil {
		fmt.Println("signup failed:", err)
		return
	}
	fmt.Println("signed up")
	a.refresh(ctx)
}

func (a *app) login(ctx context.Context) {
	email := a.prompt("email: ")
	password := a.prompt("password: ")
	if err := a.api.Login(ctx, email, password); err != nil {
		fmt.Println("login failed:", err)
		return
	}
	fmt.Println("signed in")
	a.refresh(ctx)
}

func (a *app) refresh(ctx context.Context) {
	if err := a.controller.Load(ctx); err != nil {
		return
	}
	a.show()
}

func (a *app) show() {
	client.RenderDashboard(os.Stdout, a.controller.Summary())
	client.RenderList(os.Stdout, a.controller.Transactions())
}

func (a *app) add(ctx context.Context) {
	a.form.Reset()
	if !a.fill() {
		return
	}
	if err := a.controller.Create(ctx, a.form.CreateRequest()); err != nil {
		return
	}
	a.form.Reset()
	a.show()
}

func (a *app) edit(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: edit <id>")
		return
	}

	row, ok := a.find(args[0])
	if !ok {
		fmt.Println("no such transaction")
		return
	}
	if !a.controller.BeginEdit(row.ID) {
		fmt.Println("no such transaction")
		return
	}

	a.form.BeginEdit(row)
	if !a.fill() {
		a.controller.CancelEdit()
		a.form.Reset()
		return
	}
	if err := a.controller.SubmitEdit(ctx, a.form.UpdateRequest()); err != nil {
		return
	}
	a.form.Reset()
	a.show()
}

func (a *app) delete(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: delete <id>")
		return
	}

	row, ok := a.find(args[0])
	if !ok {
		fmt.Println("no such transaction")
		return
	}

	confirm := func() bool {
		answer := a.prompt(fmt.Sprintf("delete %q (%s)? [y/N] ", row.Description, row.Amount.StringFixed(2)))
		return strings.EqualFold(strings.TrimSpace(answer), "y")
	}
	if err := a.controller.Delete(ctx, row.ID, confirm); err != nil {
		return
	}
	a.show()
}

// fill prompts for every form field, then validates. Empty input keeps
// the current value, which is what makes edit mode pleasant.
func (a *app) fill() bool {
	a.form.Type = a.promptDefault("type (income/expense)", a.form.Type)
	a.form.Amount = a.promptDefault("amount", a.form.Amount)
	a.form.Category = a.promptDefault("category", a.form.Category)
	a.form.PaymentMode = a.promptDefault("payment mode", a.form.PaymentMode)
	a.form.Description = a.promptDefault("description", a.form.Description)

	if !a.form.Validate() {
		a.form.Render(os.Stdout)
		return false
	}
	return true
}

// find matches a full id or an unambiguous prefix against the local list.
func (a *app) find(id string) (transaction.Transaction, bool) {
	var match transaction.Transaction
	count := 0
	for _, t := range a.controller.Transactions() {
		if t.ID == id {
			return t, true
		}
		if strings.HasPrefix(t.ID, id) {
			match = t
			count++
		}
	}
	if count == 1 {
		return match, true
	}
	return transaction.Transaction{}, false
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) promptDefault(label, current string) string {
	suffix := ": "
	if current != "" {
		suffix = " [" + current + "]: "
	}
	answer := a.prompt(label + suffix)
	if answer == "" {
		return current
	}
	return answer
}
