package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"petpal/internal/domain/entity"
	"petpal/pkg/errors"
)

// In-memory repository fakes shared by the usecase tests. They honor the
// same error contracts as the Firestore implementations, in particular
// NOT_FOUND for missing documents.

type memUserRepo struct {
	users  map[string]*entity.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.nextID++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) GetByFirebaseUID(_ context.Context, uid string) (*entity.User, error) {
	for _, user := range r.users {
		if user.FirebaseUID == uid {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, int64, error) {
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	all := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		copied := *r.users[id]
		all = append(all, &copied)
	}

	total := int64(len(all))
	if offset >= len(all) {
		return []*entity.User{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.users, id)
	return nil
}

type memProductRepo struct {
	products []*entity.Product
	nextID   int
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{}
}

func (r *memProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.nextID++
	if product.ID == "" {
		product.ID = fmt.Sprintf("product-%d", r.nextID)
	}
	copied := *product
	r.products = append(r.products, &copied)
	return nil
}

func (r *memProductRepo) find(id string) (int, *entity.Product) {
	for i, product := range r.products {
		if product.ID == id {
			return i, product
		}
	}
	return -1, nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	_, product := r.find(id)
	if product == nil {
		return nil, errors.NotFound("Product", nil)
	}
	copied := *product
	return &copied, nil
}

func (r *memProductRepo) List(_ context.Context, filter *entity.ProductFilter, limit, offset int) ([]*entity.Product, int64, int64, error) {
	matched := make([]*entity.Product, 0, len(r.products))
	for _, product := range r.products {
		if filter == nil || filter.Matches(product) {
			copied := *product
			matched = append(matched, &copied)
		}
	}

	filteredCount := int64(len(matched))
	totalCount := int64(len(r.products))

	if offset >= len(matched) {
		return []*entity.Product{}, filteredCount, totalCount, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], filteredCount, totalCount, nil
}

func (r *memProductRepo) Update(_ context.Context, product *entity.Product) error {
	i, existing := r.find(product.ID)
	if existing == nil {
		return errors.NotFound("Product", nil)
	}
	copied := *product
	r.products[i] = &copied
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	i, existing := r.find(id)
	if existing == nil {
		return errors.NotFound("Product", nil)
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

func (r *memProductRepo) DeleteBulk(ctx context.Context, ids []string) (int, error) {
	deleted := 0
	for _, id := range ids {
		if err := r.Delete(ctx, id); err == nil {
			deleted++
		}
	}
	return deleted, nil
}

func (r *memProductRepo) UpdateAggregates(_ context.Context, id string, ratings float64, numOfReviews int) error {
	_, product := r.find(id)
	if product == nil {
		return errors.NotFound("Product", nil)
	}
	product.Ratings = ratings
	product.NumOfReviews = numOfReviews
	return nil
}

func (r *memProductRepo) DecrementStock(_ context.Context, id string, quantity int) error {
	_, product := r.find(id)
	if product == nil {
		return errors.NotFound("Product", nil)
	}
	product.Stock -= quantity
	return nil
}

type memOrderRepo struct {
	orders []*entity.Order
	nextID int
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{}
}

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.nextID++
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", r.nextID)
	}
	copied := *order
	r.orders = append(r.orders, &copied)
	return nil
}

func (r *memOrderRepo) find(id string) (int, *entity.Order) {
	for i, order := range r.orders {
		if order.ID == id {
			return i, order
		}
	}
	return -1, nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	_, order := r.find(id)
	if order == nil {
		return nil, errors.NotFound("Order", nil)
	}
	copied := *order
	return &copied, nil
}

func (r *memOrderRepo) ListByUserID(_ context.Context, userID string) ([]*entity.Order, error) {
	var result []*entity.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			copied := *order
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memOrderRepo) ListAll(_ context.Context) ([]*entity.Order, error) {
	result := make([]*entity.Order, 0, len(r.orders))
	for _, order := range r.orders {
		copied := *order
		result = append(result, &copied)
	}
	return result, nil
}

func (r *memOrderRepo) ListCompleted(_ context.Context) ([]*entity.Order, error) {
	var result []*entity.Order
	for _, order := range r.orders {
		if order.OrderStatus != entity.OrderProcessing && !order.PaidAt.IsZero() {
			copied := *order
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memOrderRepo) Update(_ context.Context, order *entity.Order) error {
	i, existing := r.find(order.ID)
	if existing == nil {
		return errors.NotFound("Order", nil)
	}
	copied := *order
	r.orders[i] = &copied
	return nil
}

func (r *memOrderRepo) Delete(_ context.Context, id string) error {
	i, existing := r.find(id)
	if existing == nil {
		return errors.NotFound("Order", nil)
	}
	r.orders = append(r.orders[:i], r.orders[i+1:]...)
	return nil
}

func (r *memOrderRepo) DeleteBulk(ctx context.Context, ids []string) (int, error) {
	deleted := 0
	for _, id := range ids {
		if err := r.Delete(ctx, id); err == nil {
			deleted++
		}
	}
	return deleted, nil
}

type memReviewRepo struct {
	reviews []*entity.Review
	nextID  int
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{}
}

func (r *memReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.nextID++
	if review.ID == "" {
		review.ID = fmt.Sprintf("review-%d", r.nextID)
	}
	copied := *review
	r.reviews = append(r.reviews, &copied)
	return nil
}

func (r *memReviewRepo) find(id string) (int, *entity.Review) {
	for i, review := range r.reviews {
		if review.ID == id {
			return i, review
		}
	}
	return -1, nil
}

func (r *memReviewRepo) GetByID(_ context.Context, id string) (*entity.Review, error) {
	_, review := r.find(id)
	if review == nil {
		return nil, errors.NotFound("Review", nil)
	}
	copied := *review
	return &copied, nil
}

func (r *memReviewRepo) GetByProductAndUser(_ context.Context, productID, userID string) (*entity.Review, error) {
	for _, review := range r.reviews {
		if review.ProductID == productID && review.UserID == userID {
			copied := *review
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *memReviewRepo) ListByProductID(_ context.Context, productID string) ([]*entity.Review, error) {
	var result []*entity.Review
	for _, review := range r.reviews {
		if review.ProductID == productID {
			copied := *review
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memReviewRepo) ListAll(_ context.Context) ([]*entity.Review, error) {
	result := make([]*entity.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		copied := *review
		result = append(result, &copied)
	}
	return result, nil
}

func (r *memReviewRepo) Update(_ context.Context, review *entity.Review) error {
	i, existing := r.find(review.ID)
	if existing == nil {
		return errors.NotFound("Review", nil)
	}
	copied := *review
	r.reviews[i] = &copied
	return nil
}

func (r *memReviewRepo) Delete(_ context.Context, id string) error {
	i, existing := r.find(id)
	if existing == nil {
		return errors.NotFound("Review", nil)
	}
	r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
	return nil
}

type sentMail struct {
	to      string
	subject string
}

type fakeMailer struct {
	sent    []sentMail
	failAll bool
}

func (m *fakeMailer) Send(_ context.Context, to, subject, _, _ string) (string, error) {
	if m.failAll {
		return "", fmt.Errorf("smtp relay unreachable")
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject})
	return fmt.Sprintf("delivery-%d", len(m.sent)), nil
}

type fakeIdentity struct {
	uid        string
	email      string
	name       string
	verifyErr  error
	updated    []string
	deletedUID string
}

func (f *fakeIdentity) VerifyToken(_ context.Context, _ string) (string, string, string, error) {
	if f.verifyErr != nil {
		return "", "", "", f.verifyErr
	}
	return f.uid, f.email, f.name, nil
}

func (f *fakeIdentity) UpdateUser(_ context.Context, uid, _, _, _ string) error {
	f.updated = append(f.updated, uid)
	return nil
}

func (f *fakeIdentity) DeleteUser(_ context.Context, uid string) error {
	f.deletedUID = uid
	return nil
}

type fakeStorage struct {
	uploads int
	deleted []string
	failUp  bool
}

func (s *fakeStorage) Upload(_ context.Context, file io.Reader, _, folder string) (string, string, error) {
	if s.failUp {
		return "", "", fmt.Errorf("bucket unavailable")
	}
	io.Copy(io.Discard, file)
	s.uploads++
	assetID := fmt.Sprintf("public/%s/asset-%d", folder, s.uploads)
	return assetID, "https://storage.example.com/" + assetID, nil
}

func (s *fakeStorage) Delete(_ context.Context, assetID string) error {
	s.deleted = append(s.deleted, assetID)
	return nil
}

func seedUser(repo *memUserRepo, id, name string, role entity.Role) *entity.User {
	user := &entity.User{
		ID:          id,
		FirebaseUID: "fb-" + id,
		Email:       id + "@petpal.shop",
		Name:        name,
		Role:        role,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	repo.users[id] = user
	return user
}
