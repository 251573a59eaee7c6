package usecase

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petpal/internal/domain/entity"
	"petpal/pkg/errors"
)

type productFixture struct {
	uc          *ProductUseCase
	productRepo *memProductRepo
	storage     *fakeStorage
}

func newProductFixture() *productFixture {
	productRepo := newMemProductRepo()
	storage := &fakeStorage{}

	productRepo.Create(context.Background(), &entity.Product{
		ID: "p1", Name: "Dog Food", Price: 250, Category: entity.CategoryFood, Stock: 10,
	})
	productRepo.Create(context.Background(), &entity.Product{
		ID: "p2", Name: "Cat Toy", Price: 120, Category: entity.CategoryToys, Stock: 3,
	})
	productRepo.Create(context.Background(), &entity.Product{
		ID: "p3", Name: "Grooming Kit", Price: 540, Category: entity.CategoryGrooming, Stock: 7,
	})

	return &productFixture{
		uc:          NewProductUseCase(productRepo, storage),
		productRepo: productRepo,
		storage:     storage,
	}
}

func TestListProductsUnfiltered(t *testing.T) {
	f := newProductFixture()

	page, err := f.uc.ListProducts(context.Background(), url.Values{})
	require.NoError(t, err)

	assert.Len(t, page.Products, 3)
	assert.Equal(t, int64(3), page.ProductsCount)
	assert.Equal(t, int64(3), page.FilteredProductsCount)
	assert.Equal(t, 10, page.ResPerPage)
	assert.Equal(t, 1, page.Page)
}

func TestListProductsKeyword(t *testing.T) {
	f := newProductFixture()

	params := url.Values{}
	params.Set("keyword", "toy")

	page, err := f.uc.ListProducts(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, page.Products, 1)
	assert.Equal(t, "Cat Toy", page.Products[0].Name)
	assert.Equal(t, int64(3), page.ProductsCount, "total count ignores the filter")
	assert.Equal(t, int64(1), page.FilteredProductsCount)
}

func TestListProductsPriceRange(t *testing.T) {
	f := newProductFixture()

	params := url.Values{}
	params.Set("price[gte]", "200")

	page, err := f.uc.ListProducts(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, page.Products, 2)
	assert.Equal(t, int64(2), page.FilteredProductsCount)
	for _, product := range page.Products {
		assert.GreaterOrEqual(t, product.Price, 200.0)
	}
}

func TestListProductsPagination(t *testing.T) {
	f := newProductFixture()

	params := url.Values{}
	params.Set("limit", "2")
	params.Set("page", "2")

	page, err := f.uc.ListProducts(context.Background(), params)
	require.NoError(t, err)

	assert.Len(t, page.Products, 1, "page 2 holds the remainder")
	assert.Equal(t, 2, page.ResPerPage)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, int64(3), page.FilteredProductsCount)
}

func TestListProductsBadPaginationFallsBack(t *testing.T) {
	f := newProductFixture()

	params := url.Values{}
	params.Set("page", "zero")
	params.Set("limit", "-4")

	page, err := f.uc.ListProducts(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.ResPerPage)
}

func TestListProductsMalformedFilter(t *testing.T) {
	f := newProductFixture()

	params := url.Values{}
	params.Set("price[gte]", "abc")

	_, err := f.uc.ListProducts(context.Background(), params)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateProductValidation(t *testing.T) {
	f := newProductFixture()

	_, err := f.uc.CreateProduct(context.Background(), "admin", CreateProductInput{
		Name: "Leash", Price: 80, Description: "Strong", Category: "Electronics", Stock: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"), "category is a closed set")

	_, err = f.uc.CreateProduct(context.Background(), "admin", CreateProductInput{
		Name: "Leash", Price: -1, Description: "Strong", Category: "Toys", Stock: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateProductUploadsImages(t *testing.T) {
	f := newProductFixture()

	product, err := f.uc.CreateProduct(context.Background(), "admin", CreateProductInput{
		Name:        "Leash",
		Price:       80,
		Description: "Strong nylon leash",
		Category:    "Toys",
		Stock:       5,
		Images:      []string{"data:image/png;base64,aGVsbG8=", "d29ybGQ="},
	})
	require.NoError(t, err)

	assert.Len(t, product.Images, 2)
	assert.Equal(t, 2, f.storage.uploads)
	assert.Equal(t, "admin", product.CreatedBy)
}

func TestDeleteProductCascadesImages(t *testing.T) {
	f := newProductFixture()

	product, err := f.uc.CreateProduct(context.Background(), "admin", CreateProductInput{
		Name: "Leash", Price: 80, Description: "Strong", Category: "Toys", Stock: 5,
		Images: []string{"aGVsbG8="},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteProduct(context.Background(), product.ID))
	assert.Len(t, f.storage.deleted, 1)

	_, err = f.productRepo.GetByID(context.Background(), product.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteProductsBulkRules(t *testing.T) {
	f := newProductFixture()

	_, err := f.uc.DeleteProductsBulk(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = f.uc.DeleteProductsBulk(context.Background(), []string{"nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	deleted, err := f.uc.DeleteProductsBulk(context.Background(), []string{"p1", "p2", "nope"})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
}
