// Command-line smoke / stress test that simulates concurrent authors
// publishing posts and comments against a running API and produces a
// CSV latency report.
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"
)

const baseURL = "http://127.0.0.1:8080/api/v1"

var client = &http.Client{Timeout: 10 * time.Second}

// writeResult records one timed write operation for the report.
type writeResult struct {
	Worker    int
	Op        string // "post" or "comment"
	Status    int
	Elapsed   time.Duration
	Timestamp time.Time
}

// ======================= HTTP helpers =======================

// doJSON serializes a JSON body and sends the request, optionally with
// a bearer token.
func doJSON(method, url string, body any, token string) (int, []byte, error) {
	var buf []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		buf = b
	}
	req, _ := http.NewRequest(method, url, bytes.NewBuffer(buf))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, data, nil
}

// registerUser ensures the account exists (idempotent: 400 means it is
// already registered, which is acceptable for reruns).
func registerUser(username, password string) error {
	body := map[string]string{"username": username, "password": password}
	status, _, err := doJSON("POST", baseURL+"/auth/register", body, "")
	if err != nil {
		return err
	}
	if status != 201 && status != 400 {
		return fmt.Errorf("register status %d", status)
	}
	return nil
}

// loginUser returns a session token for the account.
func loginUser(username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	status, data, err := doJSON("POST", baseURL+"/auth/login", body, "")
	if err != nil {
		return "", err
	}
	if status != 200 {
		return "", fmt.Errorf("login status %d body=%s", status, string(data))
	}
	var res map[string]string
	if err := json.Unmarshal(data, &res); err != nil {
		return "", err
	}
	return res["token"], nil
}

// createPost publishes one post and returns its id.
func createPost(token, title, body string) (uint64, int, error) {
	status, data, err := doJSON("POST", baseURL+"/posts", map[string]string{"title": title, "body": body}, token)
	if err != nil || status != 201 {
		return 0, status, err
	}
	var res struct {
		Post struct {
			ID uint64 `json:"id"`
		} `json:"post"`
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return 0, status, err
	}
	return res.Post.ID, status, nil
}

// addComment posts one comment on the given post.
func addComment(token string, postID uint64, text string) (int, error) {
	url := fmt.Sprintf("%s/posts/%d/comments", baseURL, postID)
	status, _, err := doJSON("POST", url, map[string]string{"comment_text": text}, token)
	return status, err
}

// ======================= smoke tests =======================

// endpointSmokeTests exercises the main flows with positive and
// negative cases before any load is applied.
func endpointSmokeTests() error {
	username := fmt.Sprintf("smoke-%d", time.Now().UnixNano()%1000000)
	password := "SmokePwd123!"

	// Fresh registration should succeed, the duplicate be rejected.
	if status, _, err := doJSON("POST", baseURL+"/auth/register", map[string]string{"username": username, "password": password}, ""); err != nil || status != 201 {
		return fmt.Errorf("register (new) failed: status=%d err=%v", status, err)
	}
	if status, _, err := doJSON("POST", baseURL+"/auth/register", map[string]string{"username": username, "password": password}, ""); err != nil || status != 400 {
		return fmt.Errorf("register (duplicate) expected 400, got %d err=%v", status, err)
	}

	token, err := loginUser(username, password)
	if err != nil {
		return fmt.Errorf("login (valid) failed: %w", err)
	}
	if status, _, err := doJSON("POST", baseURL+"/auth/login", map[string]string{"username": username, "password": "wrong-password"}, ""); err != nil || status != 401 {
		return fmt.Errorf("login (invalid creds) expected 401, got %d err=%v", status, err)
	}

	// Anonymous writes must be rejected.
	if status, _, err := doJSON("POST", baseURL+"/posts", map[string]string{"title": "nope"}, ""); err != nil || status != 401 {
		return fmt.Errorf("anonymous post expected 401, got %d err=%v", status, err)
	}

	postID, status, err := createPost(token, "smoke post", "hello")
	if err != nil || status != 201 {
		return fmt.Errorf("create post failed: status=%d err=%v", status, err)
	}
	if status, err := addComment(token, postID, "smoke comment"); err != nil || status != 201 {
		return fmt.Errorf("add comment failed: status=%d err=%v", status, err)
	}

	// A second identity must not be able to mutate the first one's post.
	otherName := username + "b"
	if err := registerUser(otherName, password); err != nil {
		return err
	}
	otherToken, err := loginUser(otherName, password)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/posts/%d", baseURL, postID)
	if status, _, err := doJSON("PUT", url, map[string]string{"title": "hijack"}, otherToken); err != nil || status != 403 {
		return fmt.Errorf("non-author update expected 403, got %d err=%v", status, err)
	}

	log.Println("endpoint smoke tests passed: auth/post/comment scenarios verified")
	return nil
}

// ======================= load phase =======================

// runLoad has each worker publish posts and comment on them
// concurrently, collecting per-operation latencies.
func runLoad(workers, postsPerWorker int) []writeResult {
	var mu sync.Mutex
	var results []writeResult
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			username := fmt.Sprintf("load-%d-%d", time.Now().UnixNano()%1000000, worker)
			password := "LoadPwd123!"
			if err := registerUser(username, password); err != nil {
				log.Printf("worker %d register: %v", worker, err)
				return
			}
			token, err := loginUser(username, password)
			if err != nil {
				log.Printf("worker %d login: %v", worker, err)
				return
			}
			for p := 0; p < postsPerWorker; p++ {
				start := time.Now()
				postID, status, err := createPost(token, fmt.Sprintf("post %d by worker %d", p, worker), "load body")
				if err != nil {
					log.Printf("worker %d post: %v", worker, err)
					continue
				}
				mu.Lock()
				results = append(results, writeResult{Worker: worker, Op: "post", Status: status, Elapsed: time.Since(start), Timestamp: start})
				mu.Unlock()

				start = time.Now()
				status, err = addComment(token, postID, "self comment")
				if err != nil {
					log.Printf("worker %d comment: %v", worker, err)
					continue
				}
				mu.Lock()
				results = append(results, writeResult{Worker: worker, Op: "comment", Status: status, Elapsed: time.Since(start), Timestamp: start})
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	return results
}

// writeCSVReport dumps every timed operation for offline analysis.
func writeCSVReport(path string, results []writeResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"worker", "op", "status", "elapsed_ms", "timestamp"}); err != nil {
		return err
	}
	for _, r := range results {
		rec := []string{
			fmt.Sprintf("%d", r.Worker),
			r.Op,
			fmt.Sprintf("%d", r.Status),
			fmt.Sprintf("%.2f", float64(r.Elapsed.Microseconds())/1000),
			r.Timestamp.Format(time.RFC3339Nano),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := endpointSmokeTests(); err != nil {
		log.Fatalf("smoke tests failed: %v", err)
	}

	results := runLoad(8, 5)
	ok := 0
	for _, r := range results {
		if r.Status == 201 {
			ok++
		}
	}
	log.Printf("load phase: %d/%d writes succeeded", ok, len(results))

	if err := writeCSVReport("load_report.csv", results); err != nil {
		log.Fatalf("write report: %v", err)
	}
	log.Println("report written to load_report.csv")
}
