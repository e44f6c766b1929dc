package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/agents"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/conversation"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/profiler"
)

const historyLimit = 10

// telegramAPI is the part of *tgbotapi.BotAPI the bot uses.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetFileDirectURL(fileID string) (string, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Bot struct {
	api      telegramAPI
	sessions *conversation.Registry
	client   *http.Client
	logger   *zap.Logger
}

func New(token string, sessions *conversation.Registry, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	logger.Info("Authorized on Telegram", zap.String("username", api.Self.UserName))
	return newBot(api, sessions, logger), nil
}

func newBot(api telegramAPI, sessions *conversation.Registry, logger *zap.Logger) *Bot {
	return &Bot{
		api:      api,
		sessions: sessions,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

// Start polls for updates until ctx is done. Each message is handled in its
// own goroutine; the per-chat orchestrator rejects overlapping requests.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

func sessionID(chatID int64) string {
	return fmt.Sprintf("tg_%d", chatID)
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}
	if message.Document != nil {
		b.handleDocument(ctx, message)
		return
	}

	content := message.Text
	if message.Caption != "" {
		content = message.Caption
	}
	if strings.TrimSpace(content) == "" {
		return
	}
	b.handleText(ctx, message, content)
}

func (b *Bot) handleText(ctx context.Context, message *tgbotapi.Message, content string) {
	o := b.sessions.Session(sessionID(message.Chat.ID))
	b.sendTyping(message.Chat.ID)

	reply, err := o.Submit(ctx, content)
	if err != nil {
		b.replyToError(message, err)
		return
	}
	b.sendReply(message.Chat.ID, message.MessageID, reply.Content)
}

func (b *Bot) handleDocument(ctx context.Context, message *tgbotapi.Message) {
	doc := message.Document
	o := b.sessions.Session(sessionID(message.Chat.ID))

	if !agents.IsWired(o.ActiveAgent()) {
		b.replyToError(message, conversation.ErrUploadNotAllowed)
		return
	}
	if doc.FileSize > profiler.MaxResumeSize {
		b.sendErrorMessage(message.Chat.ID, fmt.Sprintf("%s is too large. Resumes must be under %d MB.", doc.FileName, profiler.MaxResumeSize>>20))
		return
	}

	data, err := b.download(ctx, doc.FileID)
	if err != nil {
		b.logger.Error("Failed to download document",
			zap.Error(err),
			zap.String("file_id", doc.FileID),
			zap.Int64("chat_id", message.Chat.ID))
		b.sendErrorMessage(message.Chat.ID, "Sorry, I couldn't download your file. Please try again.")
		return
	}

	b.sendTyping(message.Chat.ID)
	reply, err := o.Upload(ctx, models.ResumeFile{Name: doc.FileName, Data: data})
	if err != nil {
		b.replyToError(message, err)
		return
	}
	b.sendReply(message.Chat.ID, message.MessageID, reply.Content)
}

func (b *Bot) download(ctx context.Context, fileID string) ([]byte, error) {
	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download file: status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, profiler.MaxResumeSize+1))
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "help":
		b.handleHelp(message)
	case "agents":
		b.handleAgents(message)
	case "agent":
		b.handleAgent(message)
	case "history":
		b.handleHistory(ctx, message)
	default:
		b.sendMessage(message.Chat.ID, "Unknown command. Use /help to see available commands.")
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	welcome := `Welcome to CareerAI! 🚀
I'm your intelligent career companion, backed by a team of specialised agents.

You're talking to the Career Profiling agent. Send me a message to get a career readiness analysis, or send your resume as a document.
Use /agents to meet the rest of the team and /help to see all commands.`

	b.sendMessage(message.Chat.ID, welcome)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	help := `Available commands:
/start - Start the bot
/help - Show this help message
/agents - List the career agents
/agent <id> - Switch to another agent
/history - Show your conversation with the current agent

You can send:
- Text messages to the current agent
- Your resume (PDF, DOC, DOCX or TXT) to the Career Profiling agent`

	b.sendMessage(message.Chat.ID, help)
}

func (b *Bot) handleAgents(message *tgbotapi.Message) {
	active := b.sessions.Session(sessionID(message.Chat.ID)).ActiveAgent()

	response := "*Career agents:*\n\n"
	for _, p := range agents.All() {
		marker := "▫️"
		if p.ID == active {
			marker = "👉"
		}
		response += fmt.Sprintf("%s *%s*\n", marker, escapeMarkdown(p.Name))
		response += fmt.Sprintf("`%s`\n", escapeMarkdown(string(p.ID)))
		response += fmt.Sprintf("_%s_\n\n", escapeMarkdown(p.Description))
	}
	response += escapeMarkdown("Switch with /agent <id>")

	msg := tgbotapi.NewMessage(message.Chat.ID, response)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send agents message",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
	}
}

func (b *Bot) handleAgent(message *tgbotapi.Message) {
	o := b.sessions.Session(sessionID(message.Chat.ID))
	id := models.AgentID(strings.TrimSpace(message.CommandArguments()))
	if id == "" {
		p, _ := agents.Lookup(o.ActiveAgent())
		b.sendMessage(message.Chat.ID, fmt.Sprintf("You're talking to %s. Use /agent <id> to switch.", p.Name))
		return
	}

	if err := o.SwitchAgent(id); err != nil {
		b.sendErrorMessage(message.Chat.ID, fmt.Sprintf("Unknown agent %q. Use /agents to see the list.", id))
		return
	}
	p, _ := agents.Lookup(id)
	text := fmt.Sprintf("Switched to %s.\n%s\n\nCapabilities: %s", p.Name, p.Description, strings.Join(p.Capabilities, ", "))
	b.sendMessage(message.Chat.ID, text)
}

func (b *Bot) handleHistory(ctx context.Context, message *tgbotapi.Message) {
	o := b.sessions.Session(sessionID(message.Chat.ID))
	messages, err := o.Thread(ctx, o.ActiveAgent())
	if err != nil {
		b.logger.Error("Failed to get thread",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
		b.sendErrorMessage(message.Chat.ID, "Sorry, I couldn't retrieve your conversation history.")
		return
	}

	if len(messages) == 0 {
		b.sendMessage(message.Chat.ID, "You don't have any messages with this agent yet.")
		return
	}
	if len(messages) > historyLimit {
		messages = messages[len(messages)-historyLimit:]
	}

	var sb strings.Builder
	sb.WriteString("Your recent messages:\n\n")
	for _, m := range messages {
		who := "🧑 You"
		if m.Role == models.RoleAssistant {
			who = "🤖 Agent"
		}
		fmt.Fprintf(&sb, "%s (%s)\n%s\n\n", who, m.Timestamp.Format("15:04"), preview(plainText(m.Content), 200))
	}
	b.sendMessage(message.Chat.ID, strings.TrimSpace(sb.String()))
}

func (b *Bot) replyToError(message *tgbotapi.Message, err error) {
	switch {
	case errors.Is(err, conversation.ErrBusy):
		b.sendMessage(message.Chat.ID, "⏳ I'm still working on your previous request. Please wait a moment.")
	case errors.Is(err, conversation.ErrEmptyInput):
		// nothing to answer
	case errors.Is(err, conversation.ErrUploadNotAllowed):
		b.sendMessage(message.Chat.ID, fmt.Sprintf("📎 Resume uploads are handled by the Career Profiling agent. Switch with /agent %s", agents.CareerProfiling))
	case errors.Is(err, models.ErrUnsupportedFile):
		b.sendErrorMessage(message.Chat.ID, fmt.Sprintf("%v. Please send a PDF, DOC, DOCX or TXT file.", err))
	default:
		b.logger.Error("Failed to handle message",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
		b.sendErrorMessage(message.Chat.ID, "Sorry, something went wrong. Please try again.")
	}
}

// plainText drops the double-asterisk emphasis used in replies; Telegram's
// markdown dialects would reject the rest of the text.
func plainText(s string) string {
	return strings.ReplaceAll(s, "**", "")
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// escapeMarkdown escapes special characters for MarkdownV2
func escapeMarkdown(text string) string {
	specialChars := []string{"_", "*", "[", "]", "(", ")", "~", "`", ">", "#", "+", "-", "=", "|", "{", "}", ".", "!"}
	escaped := text
	for _, char := range specialChars {
		escaped = strings.ReplaceAll(escaped, char, "\\"+char)
	}
	return escaped
}

func (b *Bot) sendTyping(chatID int64) {
	if _, err := b.api.Send(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		b.logger.Debug("Failed to send chat action", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendReply(chatID int64, replyToID int, text string) {
	msg := tgbotapi.NewMessage(chatID, plainText(text))
	msg.ReplyToMessageID = replyToID
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send reply",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "⚠️ "+text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send error message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
