package impl

import (
	"context"
	"log/slog"
	"time"

	"gaspass/internal/domain/entity"
	"gaspass/internal/domain/repository"
	"gaspass/internal/domain/service"
	"gaspass/internal/errors"

	"github.com/google/uuid"
)

// Hand-rolled fakes. Each fake embeds its interface so only the methods a
// test exercises need an override; calling anything else panics loudly.

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type fakeUserRepo struct {
	repository.UserRepository

	users map[uuid.UUID]*entity.User

	createErr error
	created   []*entity.User

	resetGrants      map[uuid.UUID]string
	completedResets  []uuid.UUID
	identityPatches  []repository.IdentityUpdate
	validatedIDs     []uuid.UUID
	deletedIDs       []uuid.UUID
	setResetGrantErr error
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		users:       make(map[uuid.UUID]*entity.User),
		resetGrants: make(map[uuid.UUID]string),
	}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		repo.users[u.ID] = u
	}

	return repo
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = uuid.New()
	f.users[user.ID] = user
	f.created = append(f.created, user)

	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) findWhere(match func(*entity.User) bool) (*entity.User, error) {
	for _, user := range f.users {
		if match(user) {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return f.findWhere(func(u *entity.User) bool { return u.Username == username && username != "" })
}

func (f *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	return f.findWhere(func(u *entity.User) bool { return u.Phone == phone && phone != "" })
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.findWhere(func(u *entity.User) bool { return u.Email == email && email != "" })
}

func (f *fakeUserRepo) FindByTelegramID(_ context.Context, telegramID string) (*entity.User, error) {
	return f.findWhere(func(u *entity.User) bool { return u.TelegramID == telegramID && telegramID != "" })
}

func (f *fakeUserRepo) FindByResetToken(_ context.Context, token string) (*entity.User, error) {
	return f.findWhere(func(u *entity.User) bool { return u.ResetToken == token && token != "" })
}

func (f *fakeUserRepo) ExistsByUsernameOrPhone(_ context.Context, username, phone string) (bool, error) {
	_, err := f.findWhere(func(u *entity.User) bool {
		return (u.Username == username && username != "") || (u.Phone == phone && phone != "")
	})

	return err == nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, user)
	}

	return out, nil
}

func (f *fakeUserRepo) ListPending(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range f.users {
		if !user.IsValidated && !user.IsAdmin {
			out = append(out, user)
		}
	}

	return out, nil
}

func (f *fakeUserRepo) Validate(_ context.Context, id uuid.UUID) error {
	user, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.IsValidated = true
	f.validatedIDs = append(f.validatedIDs, id)

	return nil
}

func (f *fakeUserRepo) UpdateIdentity(_ context.Context, id uuid.UUID, update repository.IdentityUpdate) error {
	user, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	f.identityPatches = append(f.identityPatches, update)

	return nil
}

func (f *fakeUserRepo) SetResetGrant(_ context.Context, id uuid.UUID, token string, expires time.Time) error {
	if f.setResetGrantErr != nil {
		return f.setResetGrantErr
	}
	user, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.ResetToken = token
	user.ResetExpires = &expires
	f.resetGrants[id] = token

	return nil
}

func (f *fakeUserRepo) CompletePasswordReset(_ context.Context, id uuid.UUID, passwordHash string) error {
	user, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	user.ResetToken = ""
	user.ResetExpires = nil
	user.TokenVersion++
	f.completedResets = append(f.completedResets, id)

	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.users, id)
	f.deletedIDs = append(f.deletedIDs, id)

	return nil
}

type fakeRepoFactory struct {
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
	blogRepo     repository.BlogRepository
	taxonomyRepo repository.TaxonomyRepository
	reviewRepo   repository.ReviewRepository
}

func (f *fakeRepoFactory) NewUserRepository() repository.UserRepository         { return f.userRepo }
func (f *fakeRepoFactory) NewProductRepository() repository.ProductRepository   { return f.productRepo }
func (f *fakeRepoFactory) NewBlogRepository() repository.BlogRepository         { return f.blogRepo }
func (f *fakeRepoFactory) NewTaxonomyRepository() repository.TaxonomyRepository { return f.taxonomyRepo }
func (f *fakeRepoFactory) NewReviewRepository() repository.ReviewRepository     { return f.reviewRepo }

type fakeTxManager struct {
	factory  *fakeRepoFactory
	executed int
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	f.executed++

	return fn(f.factory)
}

type fakeHasher struct {
	strengthErr error
	hashErr     error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}

	return "hashed:" + password, nil
}

func (f *fakeHasher) Check(password, hash string) bool {
	return hash != "" && hash == "hashed:"+password
}

func (f *fakeHasher) ValidateStrength(string) error {
	return f.strengthErr
}

type fakeTokenService struct {
	issueErr error
}

func (f *fakeTokenService) Issue(user *entity.User) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}

	return "token-" + user.ID.String(), nil
}

func (f *fakeTokenService) Verify(string) (*service.Claims, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTokenService) TTL() time.Duration { return time.Hour }

type fakeOAuthVerifier struct {
	identity *service.FederatedIdentity
	err      error
}

func (f *fakeOAuthVerifier) VerifyIDToken(context.Context, string) (*service.FederatedIdentity, error) {
	return f.identity, f.err
}

type fakeStorage struct {
	uploads []string
	failOn  string
}

func (f *fakeStorage) Upload(_ context.Context, upload service.MediaUpload) (string, error) {
	if f.failOn != "" && upload.Filename == f.failOn {
		return "", errors.New("bucket unavailable")
	}
	f.uploads = append(f.uploads, upload.Filename)

	return "https://cdn.test/" + upload.Filename, nil
}

type fakeNotifier struct {
	recipients []string
	links      []string
	err        error
}

func (f *fakeNotifier) SendResetLink(_ context.Context, recipientID, link string) error {
	if f.err != nil {
		return f.err
	}
	f.recipients = append(f.recipients, recipientID)
	f.links = append(f.links, link)

	return nil
}

type fakeTaxonomyRepo struct {
	repository.TaxonomyRepository

	tagsByName map[string]*entity.Tag
	replaced   map[uuid.UUID][]uuid.UUID
	upsertErr  error
}

func newFakeTaxonomyRepo() *fakeTaxonomyRepo {
	return &fakeTaxonomyRepo{
		tagsByName: make(map[string]*entity.Tag),
		replaced:   make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakeTaxonomyRepo) UpsertTagByName(_ context.Context, name string) (*entity.Tag, bool, error) {
	if f.upsertErr != nil {
		return nil, false, f.upsertErr
	}
	if tag, ok := f.tagsByName[name]; ok {
		return tag, false, nil
	}
	tag := &entity.Tag{ID: uuid.New(), Name: name}
	f.tagsByName[name] = tag

	return tag, true, nil
}

func (f *fakeTaxonomyRepo) ReplacePostTags(_ context.Context, postID uuid.UUID, tagIDs []uuid.UUID) error {
	f.replaced[postID] = tagIDs

	return nil
}

func (f *fakeTaxonomyRepo) ListTags(_ context.Context) ([]*entity.Tag, error) {
	out := make([]*entity.Tag, 0, len(f.tagsByName))
	for _, tag := range f.tagsByName {
		out = append(out, tag)
	}

	return out, nil
}

type fakeBlogRepo struct {
	repository.BlogRepository

	posts     map[uuid.UUID]*entity.BlogPost
	createErr error
	updateErr error
}

func newFakeBlogRepo(posts ...*entity.BlogPost) *fakeBlogRepo {
	repo := &fakeBlogRepo{posts: make(map[uuid.UUID]*entity.BlogPost)}
	for _, p := range posts {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		repo.posts[p.ID] = p
	}

	return repo
}

func (f *fakeBlogRepo) Create(_ context.Context, post *entity.BlogPost) error {
	if f.createErr != nil {
		return f.createErr
	}
	post.ID = uuid.New()
	f.posts[post.ID] = post

	return nil
}

func (f *fakeBlogRepo) Update(_ context.Context, post *entity.BlogPost) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.posts[post.ID]; !ok {
		return repository.ErrBlogPostNotFound
	}
	f.posts[post.ID] = post

	return nil
}

func (f *fakeBlogRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	if post, ok := f.posts[id]; ok {
		return post, nil
	}

	return nil, repository.ErrBlogPostNotFound
}

type fakeProductRepo struct {
	repository.ProductRepository

	products  map[uuid.UUID]*entity.Product
	createErr error
	created   []*entity.Product
	updated   []*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		repo.products[p.ID] = p
	}

	return repo
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	product.ID = uuid.New()
	f.products[product.ID] = product
	f.created = append(f.created, product)

	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	f.products[product.ID] = product
	f.updated = append(f.updated, product)

	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if product, ok := f.products[id]; ok {
		return product, nil
	}

	return nil, repository.ErrProductNotFound
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(f.products, id)

	return nil
}

type fakeReviewRepo struct {
	repository.ReviewRepository

	reviews           map[uuid.UUID]*entity.Review
	plainUpdates      []*entity.Review
	avatarUpdates     []*entity.Review
	createAssignedIDs []uuid.UUID
}

func newFakeReviewRepo(reviews ...*entity.Review) *fakeReviewRepo {
	repo := &fakeReviewRepo{reviews: make(map[uuid.UUID]*entity.Review)}
	for _, r := range reviews {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		repo.reviews[r.ID] = r
	}

	return repo
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	review.ID = uuid.New()
	f.reviews[review.ID] = review
	f.createAssignedIDs = append(f.createAssignedIDs, review.ID)

	return nil
}

func (f *fakeReviewRepo) Update(_ context.Context, review *entity.Review) error {
	stored, ok := f.reviews[review.ID]
	if !ok {
		return repository.ErrReviewNotFound
	}
	avatar := stored.Avatar
	f.reviews[review.ID] = review
	f.reviews[review.ID].Avatar = avatar
	f.plainUpdates = append(f.plainUpdates, review)

	return nil
}

func (f *fakeReviewRepo) UpdateWithAvatar(_ context.Context, review *entity.Review) error {
	if _, ok := f.reviews[review.ID]; !ok {
		return repository.ErrReviewNotFound
	}
	f.reviews[review.ID] = review
	f.avatarUpdates = append(f.avatarUpdates, review)

	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	if review, ok := f.reviews[id]; ok {
		return review, nil
	}

	return nil, repository.ErrReviewNotFound
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.reviews[id]; !ok {
		return repository.ErrReviewNotFound
	}
	delete(f.reviews, id)

	return nil
}

type fakeAuditRepo struct {
	repository.AuditRepository

	entries   []*entity.AuditEntry
	appendErr error
	lastLimit int
}

func (f *fakeAuditRepo) Append(_ context.Context, entry *entity.AuditEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.entries = append(f.entries, entry)

	return nil
}

func (f *fakeAuditRepo) ListRecent(_ context.Context, limit int) ([]*entity.AuditEntry, error) {
	f.lastLimit = limit

	return f.entries, nil
}

func (f *fakeAuditRepo) ListByActor(_ context.Context, actorID uuid.UUID, limit int) ([]*entity.AuditEntry, error) {
	f.lastLimit = limit
	var out []*entity.AuditEntry
	for _, entry := range f.entries {
		if entry.ActorID != nil && *entry.ActorID == actorID {
			out = append(out, entry)
		}
	}

	return out, nil
}

type fakeStatsRepo struct {
	visits    []string
	buckets   []entity.VisitBucket
	lastDays  int
	totals    *entity.SiteTotals
	visitErr  error
	statsErr  error
	totalsErr error
}

func (f *fakeStatsRepo) RecordVisit(_ context.Context, ipAddress string) error {
	if f.visitErr != nil {
		return f.visitErr
	}
	f.visits = append(f.visits, ipAddress)

	return nil
}

func (f *fakeStatsRepo) VisitStats(_ context.Context, days int) ([]entity.VisitBucket, error) {
	f.lastDays = days

	return f.buckets, f.statsErr
}

func (f *fakeStatsRepo) Totals(_ context.Context) (*entity.SiteTotals, error) {
	return f.totals, f.totalsErr
}

func uploadPtr(upload service.MediaUpload) *service.MediaUpload {
	return &upload
}

// uploadBody is a tiny reader for MediaUpload fixtures.
func uploadBody(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i % 251)
	}

	return buf
}
