package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func signTimestamped(secret string, timestamp int64, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerify(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	body := []byte(`{"event":"payment.succeeded","data":{"id":"evt_1"}}`)
	v := NewVerifier(testSecret, 5*time.Minute, nil)

	t.Run("valid signature accepted", func(t *testing.T) {
		ts := now.Unix()
		sig := signTimestamped(testSecret, ts, body)

		if err := v.Verify("stripe", body, sig, strconv.FormatInt(ts, 10), now); err != nil {
			t.Fatalf("Verify: %v", err)
		}
	})

	t.Run("deterministic for fixed inputs", func(t *testing.T) {
		ts := now.Unix()
		sig := signTimestamped(testSecret, ts, body)

		for i := 0; i < 3; i++ {
			if err := v.Verify("stripe", body, sig, strconv.FormatInt(ts, 10), now); err != nil {
				t.Fatalf("call %d: %v", i, err)
			}
		}
	})

	t.Run("sha256 prefix accepted", func(t *testing.T) {
		ts := now.Unix()
		sig := "sha256=" + signTimestamped(testSecret, ts, body)

		if err := v.Verify("stripe", body, sig, strconv.FormatInt(ts, 10), now); err != nil {
			t.Fatalf("Verify: %v", err)
		}
	})

	t.Run("any flipped body byte is detected", func(t *testing.T) {
		ts := now.Unix()
		sig := signTimestamped(testSecret, ts, body)

		for i := range body {
			tampered := append([]byte(nil), body...)
			tampered[i] ^= 0x01

			err := v.Verify("stripe", tampered, sig, strconv.FormatInt(ts, 10), now)
			if !errors.Is(err, ErrInvalidSignature) {
				t.Fatalf("byte %d: expected ErrInvalidSignature, got %v", i, err)
			}
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		ts := now.Unix()
		sig := signTimestamped("wrong-secret-wrong-secret-wrong!", ts, body)

		err := v.Verify("stripe", body, sig, strconv.FormatInt(ts, 10), now)
		if !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("freshness boundary at 300s", func(t *testing.T) {
		cases := []struct {
			name    string
			age     time.Duration
			wantErr error
		}{
			{"299s old accepted", 299 * time.Second, nil},
			{"300s old accepted", 300 * time.Second, nil},
			{"301s old rejected", 301 * time.Second, ErrStaleTimestamp},
			{"301s in the future rejected", -301 * time.Second, ErrStaleTimestamp},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ts := now.Add(-tc.age).Unix()
				sig := signTimestamped(testSecret, ts, body)

				err := v.Verify("stripe", body, sig, strconv.FormatInt(ts, 10), now)
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("age %v: got %v, want %v", tc.age, err, tc.wantErr)
				}
			})
		}
	})

	t.Run("malformed headers", func(t *testing.T) {
		ts := strconv.FormatInt(now.Unix(), 10)
		valid := signTimestamped(testSecret, now.Unix(), body)

		cases := []struct {
			name      string
			signature string
			timestamp string
		}{
			{"missing signature", "", ts},
			{"non-hex signature", "sha256=not-hex!", ts},
			{"missing timestamp", valid, ""},
			{"non-numeric timestamp", valid, "yesterday"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := v.Verify("stripe", body, tc.signature, tc.timestamp, now)
				if !errors.Is(err, ErrMalformedHeader) {
					t.Fatalf("got %v, want ErrMalformedHeader", err)
				}
			})
		}
	})

	t.Run("body-only source ignores timestamp", func(t *testing.T) {
		bv := NewVerifier(testSecret, 5*time.Minute, map[string]string{"legacy": "body"})
		sig := signBody(testSecret, body)

		if err := bv.Verify("legacy", body, sig, "", now); err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if bv.Mode("legacy") != SigningModeBodyOnly {
			t.Errorf("Mode(legacy) = %s", bv.Mode("legacy"))
		}
		if bv.Mode("stripe") != SigningModeTimestamped {
			t.Errorf("Mode(stripe) = %s, want default timestamped", bv.Mode("stripe"))
		}
	})
}
