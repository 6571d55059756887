package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/internal/domain/repository"
	"github.com/oksasatya/go-commerce-api/pkg/apperr"
	"github.com/oksasatya/go-commerce-api/pkg/helpers"
)

// ProductService owns the catalog: CRUD against Postgres, best-effort search
// indexing in Elasticsearch, and image uploads to GCS.
type ProductService struct {
	Repo      repository.ProductRepository
	Logger    *logrus.Logger
	ES        *elasticsearch.Client
	ESIndex   string
	GCS       *storage.Client
	GCSBucket string
}

func NewProductService(repo repository.ProductRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string, gcs *storage.Client, gcsBucket string) *ProductService {
	return &ProductService{Repo: repo, Logger: logger, ES: es, ESIndex: esIndex, GCS: gcs, GCSBucket: gcsBucket}
}

type ProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*entity.Product, error) {
	if in.Name == "" {
		return nil, apperr.New(apperr.BadInput, "name is required")
	}
	if in.Price < 0 {
		return nil, apperr.New(apperr.BadInput, "price must not be negative")
	}
	p := &entity.Product{Name: in.Name, Description: in.Description, Price: in.Price, ImageURL: in.ImageURL}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, apperr.Wrap(apperr.UpstreamFailure, "error occurred while creating the product", err)
	}
	_ = s.indexProduct(ctx, p)
	return p, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	if id == "" {
		return nil, apperr.New(apperr.BadInput, "please send a valid id")
	}
	p, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "product does not exist with this id")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	return s.Repo.List(ctx)
}

func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (*entity.Product, error) {
	if id == "" {
		return nil, apperr.New(apperr.BadInput, "please send a valid id")
	}
	p, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "product does not exist with this id")
	}
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.Description != "" {
		p.Description = in.Description
	}
	if in.Price > 0 {
		p.Price = in.Price
	}
	if in.ImageURL != "" {
		p.ImageURL = in.ImageURL
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, apperr.Wrap(apperr.UpstreamFailure, "error occurred while updating the product", err)
	}
	_ = s.indexProduct(ctx, p)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.New(apperr.BadInput, "please send a valid id")
	}
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New(apperr.NotFound, "product does not exist with this id")
	}
	if err != nil {
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

// UploadImage stores the image in GCS and records its public URL on the
// product.
func (s *ProductService) UploadImage(ctx context.Context, productID string, r io.Reader, filename, contentType string) (*entity.Product, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, apperr.New(apperr.UpstreamFailure, "image storage is not configured")
	}
	p, err := s.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("products", productID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, apperr.Wrap(apperr.UpstreamFailure, "error occurred while uploading the image", err)
	}
	p.ImageURL = url
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, apperr.Wrap(apperr.UpstreamFailure, "error occurred while updating the product", err)
	}
	_ = s.indexProduct(ctx, p)
	return p, nil
}

func (s *ProductService) indexProduct(ctx context.Context, p *entity.Product) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"image_url":   p.ImageURL,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":  p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("product_id", p.ID).Warn("es index response error")
	}
	return nil
}

func (s *ProductService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if res, err := req.Do(c, s.ES); err == nil {
		_ = res.Body.Close()
	}
}

// Search performs a multi_match query on name and description.
func (s *ProductService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.UpstreamFailure, "search is unavailable", err)
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
