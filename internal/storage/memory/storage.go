package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/snacksprint/storefront/internal/domain/errors"
	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/domain/repository"
)

// Storage acts as repository facade backed by process memory. The storefront
// is a demo: everything lives for the process lifetime and nothing touches
// disk. A single RWMutex guards all maps, which is plenty for the demo's
// request rates.
type Storage struct {
	logger *slog.Logger

	mu           sync.RWMutex
	users        map[int64]model.User
	usersByLogin map[string]int64
	nextUserID   int64
	carts        map[int64]*cartState
	orders       []model.Order
	orderIndex   map[string]int
	catalog      []model.Restaurant
	favorites    map[int64][]model.Restaurant
	addresses    map[int64][]model.Address
	nextAddrID   int64
	chatLog      map[int64][]model.ChatMessage
	nextChatID   int64
}

type cartState struct {
	items []model.CartItem
	promo string
}

type userRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type catalogRepository struct {
	storage *Storage
}

type profileRepository struct {
	storage *Storage
}

type chatRepository struct {
	storage *Storage
}

// New creates an empty in-memory storage.
func New(logger *slog.Logger) *Storage {
	return &Storage{
		logger:       logger,
		users:        make(map[int64]model.User),
		usersByLogin: make(map[string]int64),
		carts:        make(map[int64]*cartState),
		orderIndex:   make(map[string]int),
		favorites:    make(map[int64][]model.Restaurant),
		addresses:    make(map[int64][]model.Address),
		chatLog:      make(map[int64][]model.ChatMessage),
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Catalog() repository.CatalogRepository {
	return &catalogRepository{storage: s}
}

func (s *Storage) Profiles() repository.ProfileRepository {
	return &profileRepository{storage: s}
}

func (s *Storage) ChatLog() repository.ChatRepository {
	return &chatRepository{storage: s}
}

func (s *Storage) cart(userID int64) *cartState {
	state, ok := s.carts[userID]
	if !ok {
		state = &cartState{}
		s.carts[userID] = state
	}
	return state
}

// --- UserRepository implementation ---

func (r *userRepository) Create(_ context.Context, login, name, passwordHash string) (*model.User, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByLogin[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}

	s.nextUserID++
	user := model.User{
		ID:           s.nextUserID,
		Login:        login,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.users[user.ID] = user
	s.usersByLogin[login] = user.ID
	return &user, nil
}

func (r *userRepository) GetByLogin(_ context.Context, login string) (*model.User, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByLogin[login]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	user := s.users[id]
	return &user, nil
}

func (r *userRepository) GetByID(_ context.Context, id int64) (*model.User, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &user, nil
}

// --- CartRepository implementation ---

func (r *cartRepository) Items(_ context.Context, userID int64) ([]model.CartItem, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.carts[userID]
	if !ok {
		return nil, nil
	}
	items := make([]model.CartItem, len(state.items))
	copy(items, state.items)
	return items, nil
}

func (r *cartRepository) SetItem(_ context.Context, userID int64, item model.CartItem) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.cart(userID)
	for i := range state.items {
		if state.items[i].ID == item.ID {
			state.items[i] = item
			return nil
		}
	}
	state.items = append(state.items, item)
	return nil
}

func (r *cartRepository) RemoveItem(_ context.Context, userID, itemID int64) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.carts[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	for i := range state.items {
		if state.items[i].ID == itemID {
			state.items = append(state.items[:i], state.items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (r *cartRepository) Clear(_ context.Context, userID int64) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}

func (r *cartRepository) SetPromo(_ context.Context, userID int64, code string) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart(userID).promo = code
	return nil
}

func (r *cartRepository) Promo(_ context.Context, userID int64) (string, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.carts[userID]
	if !ok {
		return "", nil
	}
	return state.promo, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Append(_ context.Context, order model.Order) (*model.Order, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orderIndex[order.ID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}

	items := make([]model.OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items

	s.orderIndex[order.ID] = len(s.orders)
	s.orders = append(s.orders, order)
	return &order, nil
}

func (r *orderRepository) ListByUser(_ context.Context, userID int64) ([]model.Order, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []model.Order
	for _, order := range s.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (r *orderRepository) Latest(_ context.Context, userID int64) (*model.Order, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].UserID == userID {
			order := s.orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStatus moves an order forward through the lifecycle. Repeating the
// current status is a no-op; moving backwards is rejected because every
// derived view (ETA, progress, timeline) assumes monotonic history.
func (r *orderRepository) UpdateStatus(_ context.Context, orderID string, status model.OrderStatus) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.orderIndex[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}

	current := s.orders[idx].Status
	if status == current {
		return nil
	}
	if status.Rank() < current.Rank() {
		return domainErrors.ErrStatusRegression
	}
	s.orders[idx].Status = status
	return nil
}

func (r *orderRepository) SelectActive(_ context.Context, limit int) ([]model.Order, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	var active []model.Order
	for _, order := range s.orders {
		if order.Status == model.OrderStatusDelivered {
			continue
		}
		active = append(active, order)
		if limit > 0 && len(active) >= limit {
			break
		}
	}
	return active, nil
}

// --- CatalogRepository implementation ---

func (r *catalogRepository) List(_ context.Context) ([]model.Restaurant, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	restaurants := make([]model.Restaurant, len(s.catalog))
	copy(restaurants, s.catalog)
	return restaurants, nil
}

func (r *catalogRepository) Replace(_ context.Context, restaurants []model.Restaurant) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog = make([]model.Restaurant, len(restaurants))
	copy(s.catalog, restaurants)
	return nil
}

// --- ProfileRepository implementation ---

func (r *profileRepository) Favorites(_ context.Context, userID int64) ([]model.Restaurant, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	favs := s.favorites[userID]
	out := make([]model.Restaurant, len(favs))
	copy(out, favs)
	return out, nil
}

func (r *profileRepository) ToggleFavorite(_ context.Context, userID int64, restaurant model.Restaurant) (bool, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	favs := s.favorites[userID]
	for i := range favs {
		if favs[i].ID == restaurant.ID {
			s.favorites[userID] = append(favs[:i], favs[i+1:]...)
			return false, nil
		}
	}
	s.favorites[userID] = append(favs, restaurant)
	return true, nil
}

func (r *profileRepository) Addresses(_ context.Context, userID int64) ([]model.Address, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	addrs := s.addresses[userID]
	out := make([]model.Address, len(addrs))
	copy(out, addrs)
	return out, nil
}

func (r *profileRepository) SaveAddress(_ context.Context, userID int64, address model.Address) (*model.Address, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAddrID++
	address.ID = s.nextAddrID
	s.addresses[userID] = append(s.addresses[userID], address)
	return &address, nil
}

// SetDefaultAddress promotes the address to the front of the list; the first
// saved address is the default.
func (r *profileRepository) SetDefaultAddress(_ context.Context, userID, addressID int64) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	addrs := s.addresses[userID]
	for i := range addrs {
		if addrs[i].ID == addressID {
			promoted := addrs[i]
			rest := append(addrs[:i:i], addrs[i+1:]...)
			s.addresses[userID] = append([]model.Address{promoted}, rest...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// --- ChatRepository implementation ---

func (r *chatRepository) Append(_ context.Context, message model.ChatMessage) (*model.ChatMessage, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextChatID++
	message.ID = s.nextChatID
	if message.AskedAt.IsZero() {
		message.AskedAt = time.Now()
	}
	s.chatLog[message.UserID] = append(s.chatLog[message.UserID], message)
	return &message, nil
}

func (r *chatRepository) ListByUser(_ context.Context, userID int64) ([]model.ChatMessage, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	log := s.chatLog[userID]
	out := make([]model.ChatMessage, len(log))
	copy(out, log)
	return out, nil
}
