package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sellerdash/client/internal/domain/seller"
	"github.com/sellerdash/client/internal/infrastructure/session"
)

// BackendClient is the outbound port to the seller backend REST API.
type BackendClient interface {
	ListProducts(ctx context.Context) ([]seller.Product, error)
	ListOrders(ctx context.Context) ([]seller.Order, error)
	ListInventory(ctx context.Context) ([]seller.InventoryItem, error)
	GetProfile(ctx context.Context) (*seller.Profile, error)
	GetRevenue(ctx context.Context) (*seller.RevenueSummary, error)
	UpdateProfile(ctx context.Context, update seller.ProfileUpdate) error
	AddProduct(ctx context.Context, input seller.NewProduct) error
	Register(ctx context.Context, form seller.Registration) error
	UpdateOrderStatus(ctx context.Context, orderID string, status seller.OrderStatus) error
}

// Store is the session-scoped cache of the seller's dashboard data. It is
// the sole mutator of its slots; consumers get copies, never references
// into the cache. Slots are independent: a failed refresh of one resource
// never blocks or corrupts another, and failed refreshes retain the
// previously loaded data alongside a recorded error kind and timestamp.
type Store struct {
	api     BackendClient
	session *session.Manager
	logger  *zap.Logger

	products  *slot[[]seller.Product]
	orders    *slot[[]seller.Order]
	inventory *slot[[]seller.InventoryItem]
	profile   *slot[*seller.Profile]
	revenue   *slot[*seller.RevenueSummary]
}

// New creates a store over the given backend client and session manager.
func New(api BackendClient, sess *session.Manager, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		api:       api,
		session:   sess,
		logger:    logger.Named("dashboard"),
		products:  newSlot[[]seller.Product](),
		orders:    newSlot[[]seller.Order](),
		inventory: newSlot[[]seller.InventoryItem](),
		profile:   newSlot[*seller.Profile](),
		revenue:   newSlot[*seller.RevenueSummary](),
	}
}

// ---------------------------------------------------------------------------
// Session Lifecycle
// ---------------------------------------------------------------------------

// InitSession restores a persisted token and, when one is present, runs
// the initial product and order loads concurrently. Absence of a stored
// token is a normal, silent case; initial load failures are logged and
// recorded per slot, never returned.
func (s *Store) InitSession(ctx context.Context) {
	s.session.Restore(ctx)
	if !s.session.HasSession() {
		s.logger.Debug("no persisted session, skipping initial loads")
		return
	}

	if info, err := s.session.InspectCurrent(); err == nil && info.Expired(time.Now()) {
		// Deliberately kept: an expired token is the caller's cue to
		// re-authenticate, not grounds for the store to drop the session.
		s.logger.Warn("persisted session token is expired",
			zap.Time("expires_at", info.ExpiresAt))
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = s.FetchProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		_, _ = s.FetchOrders(ctx)
	}()
	wg.Wait()
}

// SetToken persists a new session token. It does not trigger any refetch;
// callers refresh the slots they care about.
func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.session.Set(ctx, token)
}

// ClearSession erases the token in memory and durable storage. Cached
// resource data is intentionally left in place; it stays visible until the
// next refresh or process restart.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// Token returns the current session token, or "" when logged out.
func (s *Store) Token() string {
	return s.session.Token()
}

// ---------------------------------------------------------------------------
// Resource Refresh
// ---------------------------------------------------------------------------

// FetchProducts refreshes the product list. On success the cached list is
// replaced wholesale; on failure it is retained and the error is both
// recorded on the slot and returned.
func (s *Store) FetchProducts(ctx context.Context) ([]seller.Product, error) {
	seq := s.products.begin()
	items, err := s.api.ListProducts(ctx)
	if err != nil {
		s.products.fail(seq, err, time.Now())
		s.logFetchFailure("products", err)
		return nil, err
	}
	if !s.products.resolve(seq, items, time.Now()) {
		s.logger.Debug("discarded superseded product refresh", zap.Uint64("seq", seq))
	}
	return s.Products(), nil
}

// FetchOrders refreshes the order list with the same contract as
// FetchProducts.
func (s *Store) FetchOrders(ctx context.Context) ([]seller.Order, error) {
	seq := s.orders.begin()
	items, err := s.api.ListOrders(ctx)
	if err != nil {
		s.orders.fail(seq, err, time.Now())
		s.logFetchFailure("orders", err)
		return nil, err
	}
	if !s.orders.resolve(seq, items, time.Now()) {
		s.logger.Debug("discarded superseded order refresh", zap.Uint64("seq", seq))
	}
	return s.Orders(), nil
}

// FetchInventory refreshes the inventory view. Its endpoint and cache slot
// are independent of the product list.
func (s *Store) FetchInventory(ctx context.Context) ([]seller.InventoryItem, error) {
	seq := s.inventory.begin()
	items, err := s.api.ListInventory(ctx)
	if err != nil {
		s.inventory.fail(seq, err, time.Now())
		s.logFetchFailure("inventory", err)
		return nil, err
	}
	if !s.inventory.resolve(seq, items, time.Now()) {
		s.logger.Debug("discarded superseded inventory refresh", zap.Uint64("seq", seq))
	}
	return s.Inventory(), nil
}

// FetchProfile refreshes the seller's account record.
func (s *Store) FetchProfile(ctx context.Context) (*seller.Profile, error) {
	seq := s.profile.begin()
	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		s.profile.fail(seq, err, time.Now())
		s.logFetchFailure("profile", err)
		return nil, err
	}
	if !s.profile.resolve(seq, profile, time.Now()) {
		s.logger.Debug("discarded superseded profile refresh", zap.Uint64("seq", seq))
	}
	return s.Profile(), nil
}

// FetchRevenue refreshes the backend-computed revenue snapshot. The cached
// figures are stored exactly as received; display rounding is the
// consumer's business.
func (s *Store) FetchRevenue(ctx context.Context) (*seller.RevenueSummary, error) {
	seq := s.revenue.begin()
	summary, err := s.api.GetRevenue(ctx)
	if err != nil {
		s.revenue.fail(seq, err, time.Now())
		s.logFetchFailure("revenue", err)
		return nil, err
	}
	if !s.revenue.resolve(seq, summary, time.Now()) {
		s.logger.Debug("discarded superseded revenue refresh", zap.Uint64("seq", seq))
	}
	return s.Revenue(), nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// UpdateProfile sends the full edited record. The Profile cache is not
// updated from the response; callers refetch when they need the
// authoritative post-write state.
func (s *Store) UpdateProfile(ctx context.Context, update seller.ProfileUpdate) error {
	if err := s.api.UpdateProfile(ctx, update); err != nil {
		s.logger.Warn("profile update rejected", zap.Error(err))
		return err
	}
	s.logger.Info("profile updated")
	return nil
}

// AddProduct creates a catalog entry. The product slot is not refreshed
// automatically.
func (s *Store) AddProduct(ctx context.Context, input seller.NewProduct) error {
	if err := s.api.AddProduct(ctx, input); err != nil {
		s.logger.Warn("product creation rejected", zap.String("name", input.Name), zap.Error(err))
		return err
	}
	s.logger.Info("product created", zap.String("name", input.Name))
	return nil
}

// Register submits a seller signup. Field validation runs entirely
// client-side first; an invalid form never reaches the network.
func (s *Store) Register(ctx context.Context, form seller.Registration) error {
	if err := form.Validate(); err != nil {
		return err
	}
	if err := s.api.Register(ctx, form); err != nil {
		s.logger.Warn("registration rejected", zap.Error(err))
		return err
	}
	s.logger.Info("registration submitted", zap.String("store", form.StoreName))
	return nil
}

// UpdateOrderStatus submits a status change for one order. The cached
// order list goes stale until the caller calls FetchOrders.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, status seller.OrderStatus) error {
	if err := s.api.UpdateOrderStatus(ctx, orderID, status); err != nil {
		s.logger.Warn("order status update rejected",
			zap.String("order_id", orderID),
			zap.String("status", string(status)),
			zap.Error(err))
		return err
	}
	s.logger.Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("status", string(status)))
	return nil
}

// ---------------------------------------------------------------------------
// Snapshots
// ---------------------------------------------------------------------------

// Products returns a copy of the cached product list. Nested slices are
// copied too; mutating a snapshot never writes through to the cache.
func (s *Store) Products() []seller.Product {
	products := append([]seller.Product(nil), s.products.get()...)
	for i := range products {
		products[i].Sizes = append([]seller.SizeQuantity(nil), products[i].Sizes...)
		products[i].Images = append([]string(nil), products[i].Images...)
	}
	return products
}

// Orders returns a copy of the cached order list, items included.
func (s *Store) Orders() []seller.Order {
	orders := append([]seller.Order(nil), s.orders.get()...)
	for i := range orders {
		items := append([]seller.OrderItem(nil), orders[i].Items...)
		for j := range items {
			items[j].Image = append([]string(nil), items[j].Image...)
		}
		orders[i].Items = items
	}
	return orders
}

// Inventory returns a copy of the cached inventory view.
func (s *Store) Inventory() []seller.InventoryItem {
	return append([]seller.InventoryItem(nil), s.inventory.get()...)
}

// Profile returns a copy of the cached profile, or nil before first load.
func (s *Store) Profile() *seller.Profile {
	p := s.profile.get()
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// Revenue returns a copy of the cached revenue snapshot, or nil before
// first load.
func (s *Store) Revenue() *seller.RevenueSummary {
	r := s.revenue.get()
	if r == nil {
		return nil
	}
	cp := *r
	cp.MonthlyBreakdown = append([]seller.MonthlyRevenue(nil), r.MonthlyBreakdown...)
	return &cp
}

// ProductsStatus reports the product slot's freshness.
func (s *Store) ProductsStatus() SlotStatus { return s.products.status() }

// OrdersStatus reports the order slot's freshness.
func (s *Store) OrdersStatus() SlotStatus { return s.orders.status() }

// InventoryStatus reports the inventory slot's freshness.
func (s *Store) InventoryStatus() SlotStatus { return s.inventory.status() }

// ProfileStatus reports the profile slot's freshness.
func (s *Store) ProfileStatus() SlotStatus { return s.profile.status() }

// RevenueStatus reports the revenue slot's freshness.
func (s *Store) RevenueStatus() SlotStatus { return s.revenue.status() }

func (s *Store) logFetchFailure(resource string, err error) {
	s.logger.Warn("resource refresh failed, cached data retained",
		zap.String("resource", resource),
		zap.String("kind", string(seller.KindOf(err))),
		zap.Error(err))
}
