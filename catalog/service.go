package catalog

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/AreveiHQ/jenii-Admin/models"
	"github.com/AreveiHQ/jenii-Admin/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryStore is the persistence surface the write path needs for
// categories. Absent documents are reported as (nil, nil); uniqueness
// violations as ErrDuplicateCategory.
type CategoryStore interface {
	FindByNameAndParent(ctx context.Context, name, parentCategory string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.Category, error)
}

// ProductStore persists products into the partition named by SaleMode.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product, mode SaleMode) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Product, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, page, limit int64) ([]models.Product, int64, error)
}

type SlideStore interface {
	Create(ctx context.Context, slide *models.Slide) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.Slide, error)
}

// FileUpload is one file extracted from a multipart request.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// ProductInput carries the scalar fields of a product creation request.
type ProductInput struct {
	SKU           string
	Name          string
	Description   string
	Price         float64
	DiscountPrice float64
	Category      string
	SubCategory   string
	Collections   []string
	Metal         string
	Stock         int
	Mode          string
}

// Service is the catalog write orchestrator: it validates, uploads media
// and persists exactly one document per request, in that order. No
// document is ever written when any upload failed.
type Service struct {
	categories CategoryStore
	products   ProductStore
	slides     SlideStore
	uploader   storage.Uploader
}

func NewService(categories CategoryStore, products ProductStore, slides SlideStore, uploader storage.Uploader) *Service {
	return &Service{
		categories: categories,
		products:   products,
		slides:     slides,
		uploader:   uploader,
	}
}

// ValidateCategory checks that (name, parentCategory) would be a legal
// new category. Read-only.
func (s *Service) ValidateCategory(ctx context.Context, name, parentCategory string) error {
	if !isValidParent(parentCategory) {
		return ErrInvalidParent
	}
	existing, err := s.categories.FindByNameAndParent(ctx, name, parentCategory)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateCategory
	}
	return nil
}

// CreateCategory implements the category write path: validate, upload
// the cover image and banners concurrently, persist once.
func (s *Service) CreateCategory(ctx context.Context, name, parentCategory string, image FileUpload, banners []FileUpload) (*models.Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	parentCategory = strings.ToLower(strings.TrimSpace(parentCategory))
	if name == "" || parentCategory == "" || len(image.Data) == 0 {
		return nil, ErrMissingField
	}
	if len(name) > 50 {
		return nil, ErrNameTooLong
	}
	if err := s.ValidateCategory(ctx, name, parentCategory); err != nil {
		return nil, err
	}

	jobs := make([]uploadJob, 0, len(banners)+1)
	jobs = append(jobs, uploadJob{folder: "category/image", file: image})
	for _, banner := range banners {
		jobs = append(jobs, uploadJob{folder: "category/banners", file: banner})
	}
	urls, err := s.uploadAll(ctx, jobs)
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:           name,
		Slug:           Slugify(name),
		ParentCategory: parentCategory,
		Image:          urls[0],
		BannerImages:   urls[1:],
	}
	id, err := s.categories.Create(ctx, category)
	if err != nil {
		// The pre-check above is racy; the unique index is the final
		// arbiter and its verdict maps to the same domain error.
		s.removeAll(ctx, urls)
		return nil, err
	}
	category.ID = id
	return category, nil
}

// CreateProduct implements the product write path. The sub-category must
// be an existing Category under the submitted parent, prices must satisfy
// 0 <= discountPrice < price, and the partition is picked once from the
// mode flag.
func (s *Service) CreateProduct(ctx context.Context, in ProductInput, images []FileUpload) (*models.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.ToLower(strings.TrimSpace(in.Category))
	in.SubCategory = strings.ToLower(strings.TrimSpace(in.SubCategory))
	if len(images) == 0 || in.Name == "" || in.Price == 0 || in.Category == "" || in.SubCategory == "" {
		return nil, ErrMissingField
	}

	parent, err := s.categories.FindByNameAndParent(ctx, in.SubCategory, in.Category)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrInvalidCategory
	}

	if in.Price <= 0 || in.DiscountPrice < 0 || in.DiscountPrice >= in.Price {
		return nil, ErrInvalidPrice
	}

	jobs := make([]uploadJob, len(images))
	for i, image := range images {
		jobs[i] = uploadJob{folder: "product", file: image}
	}
	urls, err := s.uploadAll(ctx, jobs)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		SKU:             in.SKU,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		DiscountPrice:   in.DiscountPrice,
		DiscountPercent: DiscountPercent(in.Price, in.DiscountPrice),
		Category:        models.CategoryRef{Name: in.SubCategory, ID: parent.ID},
		CollectionName:  in.Collections,
		Metal:           in.Metal,
		Stock:           in.Stock,
		Slug:            Slugify(in.Name),
		Images:          urls,
	}
	id, err := s.products.Create(ctx, product, ParseSaleMode(in.Mode))
	if err != nil {
		s.removeAll(ctx, urls)
		return nil, err
	}
	product.ID = id
	return product, nil
}

// CreateSlide uploads the desktop and mobile banners and appends one
// home-page slide.
func (s *Service) CreateSlide(ctx context.Context, links, section string, desktop, mobile FileUpload) (*models.Slide, error) {
	if links == "" || section == "" || len(desktop.Data) == 0 || len(mobile.Data) == 0 {
		return nil, ErrMissingField
	}
	if !isValidSection(section) {
		return nil, ErrInvalidSection
	}

	urls, err := s.uploadAll(ctx, []uploadJob{
		{folder: "slides", file: desktop},
		{folder: "slides", file: mobile},
	})
	if err != nil {
		return nil, err
	}

	slide := &models.Slide{
		DesktopBannerImage: urls[0],
		MobileBannerImage:  urls[1],
		Links:              links,
		Section:            section,
		CreatedAt:          time.Now(),
	}
	id, err := s.slides.Create(ctx, slide)
	if err != nil {
		s.removeAll(ctx, urls)
		return nil, err
	}
	slide.ID = id
	return slide, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) ListSlides(ctx context.Context) ([]models.Slide, error) {
	return s.slides.List(ctx)
}

func (s *Service) ListProducts(ctx context.Context, page, limit int64) ([]models.Product, int64, error) {
	return s.products.List(ctx, page, limit)
}

func (s *Service) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// UpdateProduct replaces the given fields of one product.
func (s *Service) UpdateProduct(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Product, error) {
	if len(updates) == 0 {
		return nil, ErrMissingField
	}
	delete(updates, "_id")
	product, err := s.products.UpdateByID(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	return s.products.DeleteByID(ctx, id)
}

type uploadJob struct {
	folder string
	file   FileUpload
}

// uploadAll stores every file concurrently and waits for the whole
// batch. If any single upload fails the operation fails, and blobs that
// did land are removed best-effort so nothing references them.
func (s *Service) uploadAll(ctx context.Context, jobs []uploadJob) ([]string, error) {
	urls := make([]string, len(jobs))
	errCh := make(chan error, len(jobs))

	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func(i int, job uploadJob) {
			defer wg.Done()
			url, err := s.uploader.Store(ctx, job.file.Data, job.folder, storage.ObjectName(job.file.Name), job.file.ContentType)
			if err != nil {
				errCh <- err
				return
			}
			urls[i] = url
		}(i, jobs[i])
	}
	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		s.removeAll(ctx, urls)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return urls, nil
}

func (s *Service) removeAll(ctx context.Context, urls []string) {
	remover, ok := s.uploader.(storage.Remover)
	if !ok {
		return
	}
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := remover.Remove(ctx, url); err != nil {
			log.Println("orphan blob cleanup:", err)
		}
	}
}

func isValidParent(parentCategory string) bool {
	for _, p := range models.ParentCategories {
		if p == parentCategory {
			return true
		}
	}
	return false
}

func isValidSection(section string) bool {
	for _, s := range models.SlideSections {
		if s == section {
			return true
		}
	}
	return false
}
