package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/AreveiHQ/jenii-Admin/catalog"
	"github.com/AreveiHQ/jenii-Admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUploader stores in memory and fails any file whose payload
// contains "FAIL". It also implements storage.Remover so the rollback
// path is observable.
type fakeUploader struct {
	mu      sync.Mutex
	stored  []string
	removed []string
}

func (u *fakeUploader) Store(_ context.Context, data []byte, folder, filename, _ string) (string, error) {
	if bytes.Contains(data, []byte("FAIL")) {
		return "", errors.New("transport error")
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	url := "https://cdn.test/" + folder + "/" + filename
	u.stored = append(u.stored, url)
	return url, nil
}

func (u *fakeUploader) Remove(_ context.Context, url string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.removed = append(u.removed, url)
	return nil
}

type fakeCategoryStore struct {
	categories  []models.Category
	dupOnCreate bool
}

func (s *fakeCategoryStore) FindByNameAndParent(_ context.Context, name, parentCategory string) (*models.Category, error) {
	for i := range s.categories {
		if s.categories[i].Name == name && s.categories[i].ParentCategory == parentCategory {
			return &s.categories[i], nil
		}
	}
	return nil, nil
}

func (s *fakeCategoryStore) Create(_ context.Context, category *models.Category) (primitive.ObjectID, error) {
	if s.dupOnCreate {
		return primitive.NilObjectID, catalog.ErrDuplicateCategory
	}
	id := primitive.NewObjectID()
	category.ID = id
	s.categories = append(s.categories, *category)
	return id, nil
}

func (s *fakeCategoryStore) List(_ context.Context) ([]models.Category, error) {
	return s.categories, nil
}

type fakeProductStore struct {
	products   []models.Product
	lastMode   catalog.SaleMode
	gotUpdates map[string]interface{}
}

func (s *fakeProductStore) Create(_ context.Context, product *models.Product, mode catalog.SaleMode) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	product.ID = id
	s.products = append(s.products, *product)
	s.lastMode = mode
	return id, nil
}

func (s *fakeProductStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, nil
}

func (s *fakeProductStore) UpdateByID(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Product, error) {
	s.gotUpdates = updates
	return s.FindByID(context.Background(), id)
}

func (s *fakeProductStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return catalog.ErrNotFound
}

func (s *fakeProductStore) List(_ context.Context, _, _ int64) ([]models.Product, int64, error) {
	return s.products, int64(len(s.products)), nil
}

type fakeSlideStore struct {
	slides []models.Slide
}

func (s *fakeSlideStore) Create(_ context.Context, slide *models.Slide) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	slide.ID = id
	s.slides = append(s.slides, *slide)
	return id, nil
}

func (s *fakeSlideStore) List(_ context.Context) ([]models.Slide, error) {
	return s.slides, nil
}

func file(name, payload string) catalog.FileUpload {
	return catalog.FileUpload{Name: name, ContentType: "image/png", Data: []byte(payload)}
}

func newFixture() (*catalog.Service, *fakeUploader, *fakeCategoryStore, *fakeProductStore, *fakeSlideStore) {
	uploader := &fakeUploader{}
	categories := &fakeCategoryStore{}
	products := &fakeProductStore{}
	slides := &fakeSlideStore{}
	return catalog.NewService(categories, products, slides, uploader), uploader, categories, products, slides
}

func TestCreateCategory_Success(t *testing.T) {
	svc, uploader, store, _, _ := newFixture()

	category, err := svc.CreateCategory(context.Background(), "Rings", "Women",
		file("cover.png", "img"),
		[]catalog.FileUpload{file("b1.png", "img"), file("b2.png", "img")})
	require.NoError(t, err)

	assert.Equal(t, "rings", category.Name)
	assert.Equal(t, "women", category.ParentCategory)
	assert.Equal(t, "rings", category.Slug)
	assert.NotEmpty(t, category.Image)
	assert.Len(t, category.BannerImages, 2)
	assert.False(t, category.ID.IsZero())
	assert.Len(t, store.categories, 1)
	assert.Len(t, uploader.stored, 3)
}

func TestCreateCategory_DuplicateIsCaseInsensitive(t *testing.T) {
	svc, uploader, store, _, _ := newFixture()
	store.categories = []models.Category{{Name: "rings", ParentCategory: "women", Slug: "rings"}}

	_, err := svc.CreateCategory(context.Background(), "Rings", "WOMEN",
		file("cover.png", "img"), nil)
	assert.ErrorIs(t, err, catalog.ErrDuplicateCategory)
	// Validation failed before any side effect.
	assert.Empty(t, uploader.stored)
	assert.Len(t, store.categories, 1)
}

func TestCreateCategory_SameNameDifferentParentAllowed(t *testing.T) {
	svc, _, store, _, _ := newFixture()
	store.categories = []models.Category{{Name: "rings", ParentCategory: "women", Slug: "rings"}}

	_, err := svc.CreateCategory(context.Background(), "Rings", "men",
		file("cover.png", "img"), nil)
	require.NoError(t, err)
	assert.Len(t, store.categories, 2)
}

func TestCreateCategory_InvalidParent(t *testing.T) {
	svc, _, _, _, _ := newFixture()

	_, err := svc.CreateCategory(context.Background(), "Rings", "unisex",
		file("cover.png", "img"), nil)
	assert.ErrorIs(t, err, catalog.ErrInvalidParent)
}

func TestCreateCategory_MissingFields(t *testing.T) {
	svc, _, _, _, _ := newFixture()
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "", "women", file("cover.png", "img"), nil)
	assert.ErrorIs(t, err, catalog.ErrMissingField)

	_, err = svc.CreateCategory(ctx, "rings", "", file("cover.png", "img"), nil)
	assert.ErrorIs(t, err, catalog.ErrMissingField)

	_, err = svc.CreateCategory(ctx, "rings", "women", catalog.FileUpload{}, nil)
	assert.ErrorIs(t, err, catalog.ErrMissingField)
}

func TestCreateCategory_NameTooLong(t *testing.T) {
	svc, _, _, _, _ := newFixture()

	_, err := svc.CreateCategory(context.Background(), strings.Repeat("a", 51), "women",
		file("cover.png", "img"), nil)
	assert.ErrorIs(t, err, catalog.ErrNameTooLong)
}

func TestCreateCategory_UploadFailureWritesNothing(t *testing.T) {
	svc, uploader, store, _, _ := newFixture()

	_, err := svc.CreateCategory(context.Background(), "rings", "women",
		file("cover.png", "img"),
		[]catalog.FileUpload{file("b1.png", "img"), file("b2.png", "FAIL"), file("b3.png", "img")})
	assert.ErrorIs(t, err, catalog.ErrUploadFailed)

	// No document, and every blob that did land was cleaned up.
	assert.Empty(t, store.categories)
	assert.ElementsMatch(t, uploader.stored, uploader.removed)
}

func TestCreateCategory_StorageIsFinalArbiter(t *testing.T) {
	svc, uploader, store, _, _ := newFixture()
	// The pre-check sees nothing, but the unique index says otherwise.
	store.dupOnCreate = true

	_, err := svc.CreateCategory(context.Background(), "rings", "women",
		file("cover.png", "img"), nil)
	assert.ErrorIs(t, err, catalog.ErrDuplicateCategory)
	assert.ElementsMatch(t, uploader.stored, uploader.removed)
}

func seedCategory(store *fakeCategoryStore, name, parent string) primitive.ObjectID {
	id := primitive.NewObjectID()
	store.categories = append(store.categories, models.Category{
		ID: id, Name: name, ParentCategory: parent, Slug: name,
	})
	return id
}

func validProductInput() catalog.ProductInput {
	return catalog.ProductInput{
		Name:          "Gold Ring",
		Price:         1000,
		DiscountPrice: 750,
		Category:      "women",
		SubCategory:   "rings",
		Metal:         "gold",
		Stock:         5,
	}
}

func TestCreateProduct_Success(t *testing.T) {
	svc, _, catStore, prodStore, _ := newFixture()
	catID := seedCategory(catStore, "rings", "women")

	product, err := svc.CreateProduct(context.Background(), validProductInput(),
		[]catalog.FileUpload{file("p1.png", "img"), file("p2.png", "img")})
	require.NoError(t, err)

	assert.Equal(t, 25, product.DiscountPercent)
	assert.Equal(t, "gold-ring", product.Slug)
	assert.Equal(t, models.CategoryRef{Name: "rings", ID: catID}, product.Category)
	assert.Len(t, product.Images, 2)
	assert.Equal(t, catalog.SaleModeOnline, prodStore.lastMode)
	assert.Len(t, prodStore.products, 1)
}

func TestCreateProduct_OfflineModePartition(t *testing.T) {
	svc, _, catStore, prodStore, _ := newFixture()
	seedCategory(catStore, "rings", "women")

	input := validProductInput()
	input.Mode = "offline"
	_, err := svc.CreateProduct(context.Background(), input,
		[]catalog.FileUpload{file("p1.png", "img")})
	require.NoError(t, err)
	assert.Equal(t, catalog.SaleModeOffline, prodStore.lastMode)
}

func TestCreateProduct_InvalidCategory(t *testing.T) {
	svc, _, catStore, _, _ := newFixture()
	// Same sub-category name exists, but under a different parent.
	seedCategory(catStore, "rings", "men")

	_, err := svc.CreateProduct(context.Background(), validProductInput(),
		[]catalog.FileUpload{file("p1.png", "img")})
	assert.ErrorIs(t, err, catalog.ErrInvalidCategory)
}

func TestCreateProduct_MissingFields(t *testing.T) {
	svc, _, catStore, _, _ := newFixture()
	seedCategory(catStore, "rings", "women")

	input := validProductInput()
	input.Name = ""
	_, err := svc.CreateProduct(context.Background(), input,
		[]catalog.FileUpload{file("p1.png", "img")})
	assert.ErrorIs(t, err, catalog.ErrMissingField)

	_, err = svc.CreateProduct(context.Background(), validProductInput(), nil)
	assert.ErrorIs(t, err, catalog.ErrMissingField)
}

func TestCreateProduct_PriceInvariants(t *testing.T) {
	svc, _, catStore, _, _ := newFixture()
	seedCategory(catStore, "rings", "women")

	tests := []struct {
		name          string
		price         float64
		discountPrice float64
	}{
		{"negative price", -5, 0},
		{"negative discount", 1000, -1},
		{"discount equals price", 1000, 1000},
		{"discount above price", 1000, 1500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validProductInput()
			input.Price = tt.price
			input.DiscountPrice = tt.discountPrice
			_, err := svc.CreateProduct(context.Background(), input,
				[]catalog.FileUpload{file("p1.png", "img")})
			assert.ErrorIs(t, err, catalog.ErrInvalidPrice)
		})
	}
}

func TestCreateProduct_UploadFailureWritesNothing(t *testing.T) {
	svc, uploader, catStore, prodStore, _ := newFixture()
	seedCategory(catStore, "rings", "women")

	_, err := svc.CreateProduct(context.Background(), validProductInput(),
		[]catalog.FileUpload{file("p1.png", "img"), file("p2.png", "FAIL")})
	assert.ErrorIs(t, err, catalog.ErrUploadFailed)
	assert.Empty(t, prodStore.products)
	assert.ElementsMatch(t, uploader.stored, uploader.removed)
}

func TestUpdateProduct_StripsID(t *testing.T) {
	svc, _, catStore, prodStore, _ := newFixture()
	seedCategory(catStore, "rings", "women")
	product, err := svc.CreateProduct(context.Background(), validProductInput(),
		[]catalog.FileUpload{file("p1.png", "img")})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(context.Background(), product.ID,
		map[string]interface{}{"_id": "evil", "stock": 9})
	require.NoError(t, err)
	assert.NotContains(t, prodStore.gotUpdates, "_id")
	assert.Contains(t, prodStore.gotUpdates, "stock")
}

func TestUpdateProduct_NotFound(t *testing.T) {
	svc, _, _, _, _ := newFixture()

	_, err := svc.UpdateProduct(context.Background(), primitive.NewObjectID(),
		map[string]interface{}{"stock": 9})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCreateSlide_Success(t *testing.T) {
	svc, _, _, _, slideStore := newFixture()

	slide, err := svc.CreateSlide(context.Background(), "/collections/new", "Hero Slider",
		file("desk.png", "img"), file("mob.png", "img"))
	require.NoError(t, err)
	assert.NotEmpty(t, slide.DesktopBannerImage)
	assert.NotEmpty(t, slide.MobileBannerImage)
	assert.NotEqual(t, slide.DesktopBannerImage, slide.MobileBannerImage)
	assert.False(t, slide.CreatedAt.IsZero())
	assert.Len(t, slideStore.slides, 1)
}

func TestCreateSlide_InvalidSection(t *testing.T) {
	svc, _, _, _, _ := newFixture()

	_, err := svc.CreateSlide(context.Background(), "/x", "Footer", file("d.png", "img"), file("m.png", "img"))
	assert.ErrorIs(t, err, catalog.ErrInvalidSection)
}

func TestCreateSlide_UploadFailureWritesNothing(t *testing.T) {
	svc, _, _, _, slideStore := newFixture()

	_, err := svc.CreateSlide(context.Background(), "/x", "Hero Slider",
		file("d.png", "FAIL"), file("m.png", "img"))
	assert.ErrorIs(t, err, catalog.ErrUploadFailed)
	assert.Empty(t, slideStore.slides)
}
