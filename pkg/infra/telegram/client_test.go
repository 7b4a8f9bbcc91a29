package telegram_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/m-mizutani/ghnotify/pkg/domain/types"
	"github.com/m-mizutani/ghnotify/pkg/infra/telegram"
	"github.com/m-mizutani/ghnotify/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestEndpoint(t *testing.T) {
	t.Run("appends bot path template", func(t *testing.T) {
		gt.V(t, telegram.Endpoint("https://tg.example.com")).
			Equal("https://tg.example.com/bot%s/%s")
	})

	t.Run("strips trailing slash", func(t *testing.T) {
		gt.V(t, telegram.Endpoint("https://tg.example.com/")).
			Equal("https://tg.example.com/bot%s/%s")
	})
}

func TestSendTextLive(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_TELEGRAM_BOT_TOKEN")
	chatRaw := testutil.GetEnvOrSkip(t, "TEST_TELEGRAM_CHAT_ID")
	chat := gt.R1(strconv.ParseInt(chatRaw, 10, 64)).NoError(t)

	client := gt.R1(telegram.New(types.BotToken(token))).NoError(t)
	gt.NoError(t, client.SendText(context.Background(), types.ChatID(chat), "ghnotify test message"))
}
