package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"time"
)

// PhotoSearchService fetches fitness imagery from Unsplash for the
// public landing pages. Failures degrade to a small static set.
type PhotoSearchService struct {
	client    *http.Client
	accessKey string
}

func NewPhotoSearchService() *PhotoSearchService {
	return &PhotoSearchService{
		client:    &http.Client{Timeout: 10 * time.Second},
		accessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
	}
}

type PhotoResult struct {
	ID              string `json:"id"`
	URL             string `json:"url"`
	Thumb           string `json:"thumb"`
	Full            string `json:"full,omitempty"`
	Alt             string `json:"alt"`
	Photographer    string `json:"photographer"`
	PhotographerURL string `json:"photographerUrl"`
	Color           string `json:"color"`
}

type unsplashPhoto struct {
	ID             string `json:"id"`
	AltDescription string `json:"alt_description"`
	Color          string `json:"color"`
	URLs           struct {
		Regular string `json:"regular"`
		Small   string `json:"small"`
		Full    string `json:"full"`
	} `json:"urls"`
	User struct {
		Name  string `json:"name"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"user"`
}

func (s *PhotoSearchService) Search(query string, count int) []PhotoResult {
	if query == "" {
		query = "fitness"
	}
	if count <= 0 {
		count = 6
	}

	photos, err := s.search(query, count)
	if err != nil {
		log.Printf("photo search falling back to demo data: %v", err)
		return demoPhotos()
	}
	return photos
}

func (s *PhotoSearchService) Random(query string) PhotoResult {
	if query == "" {
		query = "fitness gym"
	}

	photo, err := s.random(query)
	if err != nil {
		log.Printf("random photo falling back to demo data: %v", err)
		demos := demoPhotos()
		return demos[rand.Intn(len(demos))]
	}
	return photo
}

func (s *PhotoSearchService) search(query string, count int) ([]PhotoResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", fmt.Sprint(count))
	params.Set("orientation", "landscape")
	params.Set("content_filter", "high")

	var out struct {
		Results []unsplashPhoto `json:"results"`
	}
	if err := s.get("https://api.unsplash.com/search/photos?"+params.Encode(), &out); err != nil {
		return nil, err
	}

	photos := make([]PhotoResult, 0, len(out.Results))
	for _, p := range out.Results {
		photos = append(photos, toPhotoResult(p, query))
	}
	return photos, nil
}

func (s *PhotoSearchService) random(query string) (PhotoResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("orientation", "landscape")
	params.Set("content_filter", "high")

	var p unsplashPhoto
	if err := s.get("https://api.unsplash.com/photos/random?"+params.Encode(), &p); err != nil {
		return PhotoResult{}, err
	}
	return toPhotoResult(p, query), nil
}

func (s *PhotoSearchService) get(u string, out any) error {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Unsplash: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Unsplash response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unsplash API error %d: %s", resp.StatusCode, string(body))
	}
	return json.Unmarshal(body, out)
}

func toPhotoResult(p unsplashPhoto, query string) PhotoResult {
	alt := p.AltDescription
	if alt == "" {
		alt = query
	}
	return PhotoResult{
		ID:              p.ID,
		URL:             p.URLs.Regular,
		Thumb:           p.URLs.Small,
		Full:            p.URLs.Full,
		Alt:             alt,
		Photographer:    p.User.Name,
		PhotographerURL: p.User.Links.HTML,
		Color:           p.Color,
	}
}

func demoPhotos() []PhotoResult {
	return []PhotoResult{
		{ID: "demo1", URL: "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=1200", Thumb: "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=400", Alt: "Gym equipment", Photographer: "Unsplash", PhotographerURL: "#", Color: "#1a1a2e"},
		{ID: "demo2", URL: "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=1200", Thumb: "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=400", Alt: "Person working out", Photographer: "Unsplash", PhotographerURL: "#", Color: "#16213e"},
		{ID: "demo3", URL: "https://images.unsplash.com/photo-1549060279-7e168fcee0c2?w=1200", Thumb: "https://images.unsplash.com/photo-1549060279-7e168fcee0c2?w=400", Alt: "Running track", Photographer: "Unsplash", PhotographerURL: "#", Color: "#0f3460"},
		{ID: "demo4", URL: "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=1200", Thumb: "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=400", Alt: "Yoga session", Photographer: "Unsplash", PhotographerURL: "#", Color: "#533483"},
		{ID: "demo5", URL: "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?w=1200", Thumb: "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?w=400", Alt: "Fitness training", Photographer: "Unsplash", PhotographerURL: "#", Color: "#2b2d42"},
		{ID: "demo6", URL: "https://images.unsplash.com/photo-1518611012118-696072aa579a?w=1200", Thumb: "https://images.unsplash.com/photo-1518611012118-696072aa579a?w=400", Alt: "Healthy food prep", Photographer: "Unsplash", PhotographerURL: "#", Color: "#3d5a80"},
	}
}
