// Package console is an interactive terminal front end for a single session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/agents"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/conversation"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

// ReadFileFunc loads a resume from disk. os.ReadFile by default.
type ReadFileFunc func(name string) ([]byte, error)

type Console struct {
	session  *conversation.Orchestrator
	in       io.Reader
	out      io.Writer
	readFile ReadFileFunc
	logger   *zap.Logger
}

func New(session *conversation.Orchestrator, in io.Reader, out io.Writer, logger *zap.Logger) *Console {
	return &Console{
		session:  session,
		in:       in,
		out:      out,
		readFile: os.ReadFile,
		logger:   logger,
	}
}

// Run reads lines until EOF, /quit or ctx is done. Input is read in its own
// goroutine so cancellation does not wait for the next line; that goroutine
// stays blocked on the reader until it yields a line or EOF.
func (c *Console) Run(ctx context.Context) error {
	c.printf("CareerAI console. Session %s. Type /help for commands.\n", c.session.SessionID())
	c.prompt()

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			c.printf("\nBye!\n")
			return nil
		case err := <-readErr:
			return err
		case line := <-lines:
			line = strings.TrimSpace(line)
			if line == "/quit" || line == "/exit" {
				c.printf("Bye!\n")
				return nil
			}
			if line != "" {
				c.handle(ctx, line)
			}
			c.prompt()
		}
	}
}

func (c *Console) handle(ctx context.Context, line string) {
	if !strings.HasPrefix(line, "/") {
		c.session.SetInput(line)
		reply, err := c.session.Send(ctx)
		if err != nil {
			c.printError(err)
			return
		}
		c.printMessage(reply)
		return
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "/help":
		c.printf("Commands:\n" +
			"  /agents          list the career agents\n" +
			"  /agent <id>      switch to another agent\n" +
			"  /upload <path>   upload your resume (career-profiling only)\n" +
			"  /history         show the conversation with the current agent\n" +
			"  /quit            leave\n")
	case "/agents":
		active := c.session.ActiveAgent()
		for _, p := range agents.All() {
			marker := " "
			if p.ID == active {
				marker = "*"
			}
			c.printf("%s %-20s %s\n", marker, p.ID, p.Description)
		}
	case "/agent":
		if err := c.session.SwitchAgent(models.AgentID(arg)); err != nil {
			c.printError(err)
			return
		}
		p, _ := agents.Lookup(models.AgentID(arg))
		c.printf("Switched to %s.\n", p.Name)
	case "/upload":
		c.upload(ctx, arg)
	case "/history":
		msgs, err := c.session.Thread(ctx, c.session.ActiveAgent())
		if err != nil {
			c.printError(err)
			return
		}
		if len(msgs) == 0 {
			c.printf("No messages with this agent yet.\n")
			return
		}
		for _, m := range msgs {
			c.printMessage(m)
		}
	default:
		c.printf("Unknown command %s. Type /help for commands.\n", cmd)
	}
}

func (c *Console) upload(ctx context.Context, path string) {
	if path == "" {
		c.printf("Usage: /upload <path>\n")
		return
	}
	data, err := c.readFile(path)
	if err != nil {
		c.logger.Debug("Failed to read resume", zap.String("path", path), zap.Error(err))
		c.printError(fmt.Errorf("failed to read %s: %w", path, err))
		return
	}

	c.printf("Uploading %s...\n", filepath.Base(path))
	reply, err := c.session.Upload(ctx, models.ResumeFile{Name: filepath.Base(path), Data: data})
	if err != nil {
		c.printError(err)
		return
	}
	c.printMessage(reply)
}

func (c *Console) printMessage(m models.Message) {
	who := "you"
	if m.Role == models.RoleAssistant {
		who = string(m.AgentID)
	}
	c.printf("[%s] %s:\n%s\n\n", m.Timestamp.Format("15:04:05"), who, m.Content)
}

func (c *Console) printError(err error) {
	switch {
	case errors.Is(err, conversation.ErrEmptyInput):
		return
	case errors.Is(err, conversation.ErrBusy):
		c.printf("⏳ Still working on your previous request.\n")
	default:
		c.printf("⚠️ %v\n", err)
	}
}

func (c *Console) prompt() {
	c.printf("%s> ", c.session.ActiveAgent())
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
