// Package console implements the line-oriented text driver for a ledger.
//
// Each input line is one command; fields are separated by whitespace.
// Balances and amounts are printed with two decimal places. A failed command
// prints one "Error: ..." line and the session continues.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/mmynk/splitledger/internal/ledger"
)

var (
	errSyntax = errors.New("incorrect syntax")
	errQuit   = errors.New("quit")
)

const usage = `Commands:
  add_group <group>
  list_groups
  add_user <group> <user>
  remove_user <group> <user>
  list_users <group>
  user_balance <group> <user>
  under_paid <group>
  add_xct <group> <user> <amount>
  recent_xct <group> <count>
  settle <group>
  help
  quit
`

type command struct {
	args int
	run  func(c *Console, args []string) error
}

var commands = map[string]command{
	"add_group":    {1, (*Console).addGroup},
	"list_groups":  {0, (*Console).listGroups},
	"add_user":     {2, (*Console).addUser},
	"remove_user":  {2, (*Console).removeUser},
	"list_users":   {1, (*Console).listUsers},
	"user_balance": {2, (*Console).userBalance},
	"under_paid":   {1, (*Console).underPaid},
	"add_xct":      {3, (*Console).addXct},
	"recent_xct":   {2, (*Console).recentXct},
	"settle":       {1, (*Console).settle},
	"help":         {0, (*Console).help},
	"quit":         {0, func(*Console, []string) error { return errQuit }},
}

// Console executes commands against one directory.
type Console struct {
	dir    *ledger.Directory
	out    io.Writer
	prompt string
}

// New creates a console writing results to out.
func New(dir *ledger.Directory, out io.Writer) *Console {
	return &Console{dir: dir, out: out}
}

// WithPrompt sets a prompt printed before each command is read.
func (c *Console) WithPrompt(prompt string) *Console {
	c.prompt = prompt
	return c
}

// Run reads commands from in until EOF, "quit" or ctx is cancelled. A
// cancelled ctx ends Run even while it is waiting for input.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, c.prompt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-scanErr:
			return err
		case line := <-lines:
			if err := c.Exec(line); errors.Is(err, errQuit) {
				return nil
			}
		}
	}
}

// Exec runs a single command line. Ledger and syntax errors are printed and
// also returned; blank lines are ignored.
func (c *Console) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, ok := commands[fields[0]]
	var err error
	switch {
	case !ok:
		err = fmt.Errorf("%w: unknown command %q", errSyntax, fields[0])
	case len(fields)-1 != cmd.args:
		err = fmt.Errorf("%w: %s takes %d argument(s)", errSyntax, fields[0], cmd.args)
	default:
		err = cmd.run(c, fields[1:])
	}

	if err != nil && !errors.Is(err, errQuit) {
		slog.Debug("Command failed", "command", fields[0], "error", err)
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
	return err
}

func (c *Console) addGroup(args []string) error {
	_, err := c.dir.AddGroup(args[0])
	return err
}

func (c *Console) listGroups([]string) error {
	for _, name := range c.dir.ListGroups() {
		fmt.Fprintln(c.out, name)
	}
	return nil
}

func (c *Console) addUser(args []string) error {
	return c.dir.AddUser(args[0], args[1])
}

func (c *Console) removeUser(args []string) error {
	return c.dir.RemoveUser(args[0], args[1])
}

func (c *Console) listUsers(args []string) error {
	members, err := c.dir.ListUsers(args[0])
	if err != nil {
		return err
	}
	for _, m := range members {
		fmt.Fprintf(c.out, "%s %s\n", m.Name, ledger.FormatAmount(m.Balance))
	}
	return nil
}

func (c *Console) userBalance(args []string) error {
	balance, err := c.dir.UserBalance(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, ledger.FormatAmount(balance))
	return nil
}

func (c *Console) underPaid(args []string) error {
	names, err := c.dir.LeastPaid(args[0])
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(c.out, name)
	}
	return nil
}

func (c *Console) addXct(args []string) error {
	amount, err := strconv.ParseFloat(args[2], 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: invalid amount %q", errSyntax, args[2])
	}
	_, _, err = c.dir.PostTransaction(args[0], args[1], amount)
	return err
}

func (c *Console) recentXct(args []string) error {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: invalid count %q", errSyntax, args[1])
	}
	xcts, err := c.dir.RecentTransactions(args[0], n)
	if err != nil {
		return err
	}
	for _, x := range xcts {
		fmt.Fprintf(c.out, "%s %s\n", x.User, ledger.FormatAmount(x.Amount))
	}
	return nil
}

func (c *Console) settle(args []string) error {
	settlements, err := c.dir.Settlements(args[0])
	if err != nil {
		return err
	}
	for _, s := range settlements {
		fmt.Fprintf(c.out, "%s pays %s %s\n", s.From, s.To, ledger.FormatAmount(s.Amount))
	}
	return nil
}

func (c *Console) help([]string) error {
	fmt.Fprint(c.out, usage)
	return nil
}
