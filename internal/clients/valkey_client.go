package clients

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

const (
	VALKEY_QUOTA_KEY_PREFIX = "newslens:quota:"
	quotaWindowSeconds      = 86400
)

type ValkeyOptions struct {
	Address  string
	Password string
	TLS      bool
}

// ValkeyQuota counts upstream news fetches per API key and UTC day.
type ValkeyQuota struct {
	Limit int64

	conn valkey.Client // guarded by mu, swapped by recreateClient
	opts ValkeyOptions
	mu   sync.Mutex
	now  func() time.Time
}

func newValkeyClient(opts ValkeyOptions) (valkey.Client, error) {
	clientOpts := valkey.ClientOption{
		InitAddress:      []string{opts.Address},
		Password:         opts.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if opts.TLS {
		clientOpts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}
	return client, nil
}

// NewValkeyQuota connects to Valkey and verifies the connection with PING.
func NewValkeyQuota(opts ValkeyOptions, limit int64) (*ValkeyQuota, error) {
	if opts.Address == "" {
		return nil, errors.New("[ValkeyClient] missing Valkey address")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("[ValkeyClient] quota limit must be positive, got %d", limit)
	}

	client, err := newValkeyClient(opts)
	if err != nil {
		return nil, err
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey",
		slog.String("address", opts.Address),
		slog.Int64("daily_limit", limit))
	return &ValkeyQuota{conn: client, Limit: limit, opts: opts, now: time.Now}, nil
}

func (vq *ValkeyQuota) recreateClient() {
	vq.mu.Lock()
	defer vq.mu.Unlock()

	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	client, err := newValkeyClient(vq.opts)
	if err != nil {
		slog.Error("[ValkeyClient] Recreate failed", slog.String("error", err.Error()))
		return
	}
	vq.conn.Close()
	vq.conn = client
	slog.Info("[ValkeyClient] Successfully reconnected to valkey")
}

func (vq *ValkeyQuota) client() valkey.Client {
	vq.mu.Lock()
	defer vq.mu.Unlock()
	return vq.conn
}

// Allow records one fetch for apiKey and reports whether it is still within
// the daily limit.
func (vq *ValkeyQuota) Allow(ctx context.Context, apiKey string) (bool, error) {
	key := quotaKey(apiKey, vq.now())
	c := vq.client()
	completed := []valkey.Completed{
		c.B().Incr().Key(key).Build(),
		c.B().Expire().Key(key).Seconds(quotaWindowSeconds).Build(),
	}

	results := vq.DoMultiWithRetry(ctx, completed, 2)
	for _, res := range results {
		if err := res.Error(); err != nil {
			return false, fmt.Errorf("[ValkeyClient] quota update: %w", err)
		}
	}

	count, err := results[0].AsInt64()
	if err != nil {
		return false, fmt.Errorf("[ValkeyClient] quota counter: %w", err)
	}
	if count > vq.Limit {
		slog.Warn("[ValkeyClient] Daily quota exceeded",
			slog.String("key", key),
			slog.Int64("count", count),
			slog.Int64("limit", vq.Limit))
		return false, nil
	}
	return true, nil
}

func (vq *ValkeyQuota) DoMultiWithRetry(ctx context.Context, completed []valkey.Completed, retries int) []valkey.ValkeyResult {
	var results []valkey.ValkeyResult

	for i := 0; i < retries; i++ {
		results = vq.client().DoMulti(ctx, completed...)
		hasErr := false
		for _, r := range results {
			if r.Error() != nil {
				hasErr = true
				slog.Warn("[ValkeyClient] Do Multi failed",
					slog.Int("attempt", i+1),
					slog.String("error", r.Error().Error()))
				if isConnectionError(r.Error()) {
					vq.recreateClient()
				}
				break
			}
		}
		if !hasErr || ctx.Err() != nil {
			break
		}
		time.Sleep(time.Millisecond * 100)
	}

	return results
}

func (vq *ValkeyQuota) Close() {
	vq.client().Close()
}

// quotaKey never embeds the raw API key.
func quotaKey(apiKey string, now time.Time) string {
	sum := sha256.Sum256([]byte(apiKey))
	return VALKEY_QUOTA_KEY_PREFIX + hex.EncodeToString(sum[:])[:16] + ":" + now.UTC().Format("20060102")
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
