package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/antarcticanco/storefront-app/models"
	"github.com/antarcticanco/storefront-app/utils"
)

// RecommenderConfig adalah konfigurasi endpoint text-completion eksternal.
type RecommenderConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

func (cfg *RecommenderConfig) Validate() error {
	if cfg.BaseURL == "" {
		return errors.New("recommender base URL is required")
	}
	if cfg.Model == "" {
		return errors.New("recommender model is required")
	}
	return nil
}

// RecommendationService memanggil layanan rekomendasi dan mem-parse
// jawabannya secara defensif. Kegagalan parse tidak pernah jadi error
// blocking — hasilnya list kosong.
type RecommendationService struct {
	config *RecommenderConfig
	client *http.Client
}

func NewRecommendationService(cfg *RecommenderConfig) *RecommendationService {
	return &RecommendationService{
		config: cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured melaporkan apakah endpoint eksternal di-set. Tanpa endpoint,
// storefront tetap jalan (demo mode) dengan rekomendasi kosong.
func (rs *RecommendationService) Configured() bool {
	return rs.config != nil && rs.config.BaseURL != ""
}

type completionRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Text string `json:"text"`
}

const recommendPromptFormat = `You are a food recommendation expert. Given the following order history, recommend dishes that the user might enjoy. Only suggest meals where you are at least 80%% sure they match, and respond with a JSON array of strings.

Order History:
%s`

// RecommendDishes mengirim ringkasan riwayat pesanan dan mengembalikan
// daftar nama dish yang disarankan (bentuk bebas, sudah di-parse).
func (rs *RecommendationService) RecommendDishes(ctx context.Context, history []models.OrderHistoryItem) ([]string, error) {
	if err := rs.config.Validate(); err != nil {
		return nil, err
	}

	summary := make([]map[string]interface{}, 0, len(history))
	for _, item := range history {
		summary = append(summary, map[string]interface{}{
			"name":     item.DishName,
			"quantity": item.Quantity,
		})
	}
	historyJSON, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	reqBody, err := json.Marshal(completionRequest{
		Model:  rs.config.Model,
		Prompt: fmt.Sprintf(recommendPromptFormat, string(historyJSON)),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rs.config.BaseURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if rs.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+rs.config.APIKey)
	}

	resp, err := rs.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommender returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var completion completionResponse
	text := string(raw)
	if err := json.Unmarshal(raw, &completion); err == nil && completion.Text != "" {
		text = completion.Text
	}

	dishes, err := ParseDishList(text)
	if err != nil {
		// Fallback terdokumentasi: parse gagal -> rekomendasi kosong
		utils.ErrorLogger.Printf("could not parse recommendation output: %v", err)
		return []string{}, nil
	}
	return dishes, nil
}

// ParseDishList mem-parse output model jadi daftar nama dish. Coba JSON
// array dulu; kalau gagal, bersihkan bracket dan kutip lalu split koma.
// Output yang benar-benar tidak terbaca menghasilkan error.
func ParseDishList(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errors.New("empty recommendation output")
	}

	var dishes []string
	if err := json.Unmarshal([]byte(trimmed), &dishes); err == nil {
		return cleanNames(dishes), nil
	}

	utils.InfoLogger.Debugf("recommendation output is not strict JSON, trying flexible parse: %q", trimmed)

	cleaned := strings.TrimPrefix(trimmed, "[")
	cleaned = strings.TrimSuffix(cleaned, "]")
	cleaned = strings.ReplaceAll(cleaned, "'", `"`)

	parts := strings.Split(cleaned, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		name = strings.Trim(name, `"`)
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no dish names found in output: %q", raw)
	}
	return names, nil
}

func cleanNames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, name := range in {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
