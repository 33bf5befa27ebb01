package services

import (
	"errors"
	"fmt"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotSender delivers one match alert to one chat. The consumer treats it
// as opaque and relies on queue redelivery instead of retrying here.
type BotSender interface {
	SendMatchAlert(chatID int64, text string) error
}

// TelegramService sends alerts through the Telegram Bot API.
type TelegramService struct {
	Bot    *tgbotapi.BotAPI
	AppURL string // mini-app link attached to every alert
}

// InitializeTelegramBot initializes the bot from TELEGRAM_BOT_TOKEN
func InitializeTelegramBot() (*tgbotapi.BotAPI, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, errors.New("TELEGRAM_BOT_TOKEN is not set")
	}
	return tgbotapi.NewBotAPI(token)
}

// SendMatchAlert sends the alert text with an inline button opening the app
func (ts *TelegramService) SendMatchAlert(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if ts.AppURL != "" {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("Open Sparq 💬", ts.AppURL),
			),
		)
	}
	if _, err := ts.Bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message to chat %d: %w", chatID, err)
	}
	return nil
}
