// Command smoketest drives a running server through the whole
// enrollment and scan flow: login, switch to register mode, stash a
// fingerprint, register a teacher, switch back to attendance mode and
// scan twice. It needs a reachable server and a valid admin password.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type client struct {
	baseURL string
	token   string
	http    *http.Client
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *client) do(method, path string, body interface{}) (int, envelope, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, envelope{}, err
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, buf)
	if err != nil {
		return 0, envelope{}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, envelope{}, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, envelope{}, fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return resp.StatusCode, env, nil
}

type step struct {
	name string
	run  func(c *client) error
}

func expectStatus(got, want int, env envelope) error {
	if got != want {
		return fmt.Errorf("got HTTP %d (message: %q), want %d", got, env.Message, want)
	}
	return nil
}

func main() {
	baseURL := flag.String("url", "http://localhost:8000", "server base URL")
	password := flag.String("password", "", "admin password")
	fingerprintID := flag.Int("fingerprint", 42, "fingerprint ID to enroll and scan")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "smoketest: -password is required")
		os.Exit(2)
	}

	c := &client{
		baseURL: *baseURL + "/api/v1",
		http:    &http.Client{Timeout: 10 * time.Second},
	}

	steps := []step{
		{"health", func(c *client) error {
			resp, err := c.http.Get(*baseURL + "/health")
			if err != nil {
				return err
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("got HTTP %d, want 200", resp.StatusCode)
			}
			return nil
		}},
		{"login", func(c *client) error {
			status, env, err := c.do(http.MethodPost, "/auth/login", map[string]string{"password": *password})
			if err != nil {
				return err
			}
			if err := expectStatus(status, http.StatusOK, env); err != nil {
				return err
			}
			var data struct {
				AccessToken string `json:"access_token"`
			}
			if err := json.Unmarshal(env.Data, &data); err != nil {
				return err
			}
			c.token = data.AccessToken
			return nil
		}},
		{"enter register mode", func(c *client) error {
			status, env, err := c.do(http.MethodPut, "/mode", map[string]string{"mode": "register"})
			if err != nil {
				return err
			}
			return expectStatus(status, http.StatusOK, env)
		}},
		{"stash fingerprint", func(c *client) error {
			status, env, err := c.do(http.MethodPost, "/registrations/fingerprint", map[string]int{"fingerprint_id": *fingerprintID})
			if err != nil {
				return err
			}
			return expectStatus(status, http.StatusOK, env)
		}},
		{"poll pending fingerprint", func(c *client) error {
			status, env, err := c.do(http.MethodGet, "/registrations/fingerprint/latest", nil)
			if err != nil {
				return err
			}
			if err := expectStatus(status, http.StatusOK, env); err != nil {
				return err
			}
			var data struct {
				Status string `json:"status"`
			}
			if err := json.Unmarshal(env.Data, &data); err != nil {
				return err
			}
			if data.Status != "ready" {
				return fmt.Errorf("pending slot status %q, want ready", data.Status)
			}
			return nil
		}},
		{"register teacher", func(c *client) error {
			status, env, err := c.do(http.MethodPost, "/registrations", map[string]interface{}{
				"name":           "Smoke Test Teacher",
				"department":     "QA",
				"fingerprint_id": *fingerprintID,
			})
			if err != nil {
				return err
			}
			return expectStatus(status, http.StatusCreated, env)
		}},
		{"enter attendance mode", func(c *client) error {
			status, env, err := c.do(http.MethodPut, "/mode", map[string]string{"mode": "attendance"})
			if err != nil {
				return err
			}
			return expectStatus(status, http.StatusOK, env)
		}},
		{"scan check-in", func(c *client) error {
			status, env, err := c.do(http.MethodPost, "/attendance/scan", map[string]int{"fingerprint_id": *fingerprintID})
			if err != nil {
				return err
			}
			return expectStatus(status, http.StatusOK, env)
		}},
		{"scan during cooldown", func(c *client) error {
			status, env, err := c.do(http.MethodPost, "/attendance/scan", map[string]int{"fingerprint_id": *fingerprintID})
			if err != nil {
				return err
			}
			// Immediately after check-in the second scan must bounce.
			return expectStatus(status, http.StatusBadRequest, env)
		}},
		{"scan unknown fingerprint", func(c *client) error {
			status, env, err := c.do(http.MethodPost, "/attendance/scan", map[string]int{"fingerprint_id": 999999})
			if err != nil {
				return err
			}
			return expectStatus(status, http.StatusNotFound, env)
		}},
	}

	failed := 0
	for _, s := range steps {
		if err := s.run(c); err != nil {
			failed++
			fmt.Printf("FAIL  %-26s %v\n", s.name, err)
			continue
		}
		fmt.Printf("ok    %s\n", s.name)
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d steps failed\n", failed, len(steps))
		os.Exit(1)
	}
	fmt.Printf("\nall %d steps passed\n", len(steps))
}
