package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"sync"
	"time"

	"github.com/curavet/clinic-admin-service/internal/domain"
	"github.com/curavet/clinic-admin-service/internal/dto"
	"github.com/curavet/clinic-admin-service/internal/middleware"
	"github.com/curavet/clinic-admin-service/pkg/httpclient"
)

// Client is the dashboard's API client. It holds the admin session cookie
// obtained at login and attaches it to every request.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu           sync.RWMutex
	sessionToken string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Login exchanges the identity provider's ID token for the session cookie.
func (c *Client) Login(ctx context.Context, idToken string) error {
	body, err := json.Marshal(dto.LoginRequest{IDToken: idToken})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp.StatusCode, resp.Body)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			c.mu.Lock()
			c.sessionToken = cookie.Value
			c.mu.Unlock()
			return nil
		}
	}

	return errors.New("login response did not set a session cookie")
}

func (c *Client) headers(contentType string) map[string]string {
	headers := map[string]string{}
	if contentType != "" {
		headers["Content-Type"] = contentType
	}

	c.mu.RLock()
	if c.sessionToken != "" {
		headers["Cookie"] = middleware.SessionCookieName + "=" + c.sessionToken
	}
	c.mu.RUnlock()

	return headers
}

func (c *Client) doJSON(ctx context.Context, method string, path string, payload interface{}, out interface{}) error {
	var body []byte
	var err error
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			return err
		}
	}

	status, respBody, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
		URL:     c.baseURL + path,
		Method:  method,
		Body:    body,
		Headers: c.headers("application/json"),
	})
	if err != nil {
		return err
	}

	if status >= http.StatusBadRequest {
		return decodeError(status, bytes.NewReader(respBody))
	}

	if out != nil {
		return json.Unmarshal(respBody, out)
	}

	return nil
}

func (c *Client) doMultipart(ctx context.Context, path string, fileName string, contentType string, file io.Reader, fields map[string]string, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err = io.Copy(part, file); err != nil {
		return err
	}

	for key, value := range fields {
		if err = writer.WriteField(key, value); err != nil {
			return err
		}
	}

	if err = writer.Close(); err != nil {
		return err
	}

	status, respBody, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
		URL:     c.baseURL + path,
		Method:  http.MethodPost,
		Body:    buf.Bytes(),
		Headers: c.headers(writer.FormDataContentType()),
	})
	if err != nil {
		return err
	}

	if status >= http.StatusBadRequest {
		return decodeError(status, bytes.NewReader(respBody))
	}

	if out != nil {
		return json.Unmarshal(respBody, out)
	}

	return nil
}

func decodeError(status int, body io.Reader) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&errResp); err == nil && errResp.Error != "" {
		return errors.New(errResp.Error)
	}

	return fmt.Errorf("request failed with status %d", status)
}

func (c *Client) GetProducts(ctx context.Context) ([]domain.Product, error) {
	var resp dto.ProductsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var resp dto.ProductDetailResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/products/"+id, nil, &resp); err != nil {
		return domain.Product{}, err
	}
	return resp.Product, nil
}

func (c *Client) CreateProduct(ctx context.Context, req dto.ProductRequest) (string, error) {
	var resp dto.CreateProductResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/products", req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) error {
	return c.doJSON(ctx, http.MethodPut, "/api/admin/products/"+id, req, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/products/"+id, nil, nil)
}

func (c *Client) SeedProducts(ctx context.Context, req dto.SeedRequest) (int, error) {
	var resp dto.SeedResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/products/seed", req, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *Client) UploadProductImage(ctx context.Context, fileName string, contentType string, file io.Reader) (dto.UploadResponse, error) {
	var resp dto.UploadResponse
	err := c.doMultipart(ctx, "/api/upload", fileName, contentType, file, nil, &resp)
	return resp, err
}

func (c *Client) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	var resp dto.BookingsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/bookings", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}

func (c *Client) SetBookingStatus(ctx context.Context, id string, booked bool) error {
	return c.doJSON(ctx, http.MethodPut, "/api/bookings/"+id, dto.BookingStatusRequest{Booked: booked}, nil)
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/bookings/"+id, nil, nil)
}

func (c *Client) GetFeaturedImages(ctx context.Context) ([]domain.FeaturedImage, error) {
	var resp dto.FeaturedImagesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/featured-images", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Images, nil
}

func (c *Client) UploadFeaturedImage(ctx context.Context, fileName string, contentType string, file io.Reader, alt string) (dto.UploadResponse, error) {
	var resp dto.UploadResponse
	err := c.doMultipart(ctx, "/api/featured-images", fileName, contentType, file, map[string]string{"alt": alt}, &resp)
	return resp, err
}

func (c *Client) DeleteFeaturedImage(ctx context.Context, publicID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/featured-images", dto.DeleteImageRequest{PublicID: publicID}, nil)
}
