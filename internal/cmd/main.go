package main

import (
	"context"
	"log/slog"
	"note-keeper/internal/middlewares"
	"os"
)

func main() {
	username := "kody"
	if len(os.Args) > 1 {
		username = os.Args[1]
	}

	token, _, err := middlewares.GenerateToken(context.Background(), []byte(middlewares.SigningKey), 0, username, []string{"admin"})
	if err != nil {
		slog.Error(err.Error())
	}

	slog.Info(token)
}
