package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "stock_state.json", cfg.StateFile)
	require.Equal(t, "stock_monitor.log", cfg.LogFile)
	require.Equal(t, "smtp.gmail.com", cfg.Email.Server)
	require.Equal(t, 587, cfg.Email.Port)
	require.Equal(t, 2*time.Second, cfg.CheckDelay)
	require.NotEmpty(t, cfg.Products)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("CHECK_DELAY", "500ms")
	t.Setenv("PROXIES", "http://proxy1:8080,http://proxy2:8080")

	cfg, err := Load()
	require.NoError(t, err)

	require.True(t, cfg.Telegram.Configured())
	require.Equal(t, 2525, cfg.Email.Port)
	require.Equal(t, 500*time.Millisecond, cfg.CheckDelay)
	require.Equal(t, []string{"http://proxy1:8080", "http://proxy2:8080"}, cfg.Proxies)
}

func TestChannelConfigured(t *testing.T) {
	require.False(t, Telegram{BotToken: "123:abc"}.Configured())
	require.True(t, Telegram{BotToken: "123:abc", ChatID: "42"}.Configured())

	require.False(t, Email{From: "a@b.c", Password: "s3cret"}.Configured())
	require.True(t, Email{From: "a@b.c", Password: "s3cret", To: "d@e.f"}.Configured())
}

func TestLoadProductsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "Widget", "url": "https://shop.example/widget", "selector": "buy now", "price_selector": ".amount"}
	]`), 0o644))

	products, err := LoadProducts(path)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Widget", products[0].Name)
	require.Equal(t, ".amount", products[0].PriceSelector)
}

func TestLoadProductsRejectsBadEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Widget"}]`), 0o644))

	_, err := LoadProducts(path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))
	_, err = LoadProducts(path)
	require.Error(t, err)
}
