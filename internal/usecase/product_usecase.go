package usecase

import (
	"bytes"
	"context"
	"net/url"
	"strconv"

	"petpal/internal/domain/entity"
	"petpal/internal/domain/repository"
	"petpal/pkg/errors"
	"petpal/pkg/logger"
	"petpal/pkg/utils"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	storage     AssetStorage
}

func NewProductUseCase(productRepo repository.ProductRepository, storage AssetStorage) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		storage:     storage,
	}
}

// CatalogPage is one page of the public listing, together with the counts
// the storefront needs for its result header and infinite scroll.
type CatalogPage struct {
	Products              []*entity.Product `json:"products"`
	ProductsCount         int64             `json:"productsCount"`
	FilteredProductsCount int64             `json:"filteredProductsCount"`
	ResPerPage            int               `json:"resPerPage"`
	Page                  int               `json:"page"`
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, params url.Values) (*CatalogPage, error) {
	filter, err := ParseProductFilter(params)
	if err != nil {
		return nil, err
	}

	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))
	pagination := utils.NewPaginationParams(page, limit)

	products, filteredCount, totalCount, err := uc.productRepo.List(ctx, filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return nil, err
	}

	if products == nil {
		products = []*entity.Product{}
	}

	return &CatalogPage{
		Products:              products,
		ProductsCount:         totalCount,
		FilteredProductsCount: filteredCount,
		ResPerPage:            pagination.PageSize,
		Page:                  pagination.Page,
	}, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	Category    string
	Stock       int
	Images      []string
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, creatorID string, input CreateProductInput) (*entity.Product, error) {
	category, ok := entity.ParseCategory(input.Category)
	if !ok {
		return nil, errors.BadRequest("Please select correct category for product", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("Product price cannot be negative", nil)
	}
	if input.Stock < 0 {
		return nil, errors.BadRequest("Product stock cannot be negative", nil)
	}

	images, err := uc.uploadImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Category:    category,
		Stock:       input.Stock,
		Images:      images,
		CreatedBy:   creatorID,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input CreateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category, ok := entity.ParseCategory(input.Category)
	if !ok {
		return nil, errors.BadRequest("Please select correct category for product", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("Product price cannot be negative", nil)
	}
	if input.Stock < 0 {
		return nil, errors.BadRequest("Product stock cannot be negative", nil)
	}

	// Replacing images removes the old assets first; a broken reference is
	// worse than a dangling upload.
	if len(input.Images) > 0 {
		if err := uc.deleteImages(ctx, product.Images); err != nil {
			return nil, err
		}
		images, err := uc.uploadImages(ctx, input.Images)
		if err != nil {
			return nil, err
		}
		product.Images = images
	}

	product.Name = input.Name
	product.Price = input.Price
	product.Description = input.Description
	product.Category = category
	product.Stock = input.Stock

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.deleteImages(ctx, product.Images); err != nil {
		return err
	}

	return uc.productRepo.Delete(ctx, id)
}

// DeleteProductsBulk removes the given products and their image assets.
// An empty id list is a validation error; ids matching nothing is a
// not-found result, never a silent success.
func (uc *ProductUseCase) DeleteProductsBulk(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, errors.BadRequest("Please provide an array of product IDs", nil)
	}

	var existing []*entity.Product
	for _, id := range ids {
		product, err := uc.productRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				continue
			}
			return 0, err
		}
		existing = append(existing, product)
	}

	if len(existing) == 0 {
		return 0, errors.NotFound("Products", nil)
	}

	for _, product := range existing {
		if err := uc.deleteImages(ctx, product.Images); err != nil {
			// Asset cleanup should not strand already-confirmed deletions
			// mid-batch; the product documents are still the authority.
			logger.Warn("Failed to delete assets for product %s: %v", product.ID, err)
		}
	}

	return uc.productRepo.DeleteBulk(ctx, ids)
}

func (uc *ProductUseCase) uploadImages(ctx context.Context, payloads []string) ([]entity.ProductImage, error) {
	images := make([]entity.ProductImage, 0, len(payloads))

	for _, payload := range payloads {
		contentType, data, err := decodeImagePayload(payload)
		if err != nil {
			return nil, err
		}

		assetID, url, err := uc.storage.Upload(ctx, bytes.NewReader(data), contentType, "products")
		if err != nil {
			return nil, errors.DependencyFailure("Failed to upload product image", err)
		}

		images = append(images, entity.ProductImage{
			AssetID: assetID,
			URL:     url,
		})
	}

	return images, nil
}

func (uc *ProductUseCase) deleteImages(ctx context.Context, images []entity.ProductImage) error {
	for _, image := range images {
		if image.AssetID == "" {
			continue
		}
		if err := uc.storage.Delete(ctx, image.AssetID); err != nil {
			return errors.DependencyFailure("Failed to delete product image", err)
		}
	}
	return nil
}
