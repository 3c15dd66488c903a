package viewmodel

import (
	"context"
	"errors"

	"github.com/talespace/talespace-server/catalog"
	"github.com/talespace/talespace-server/models"
)

// ErrLoadFailed marks a catalog load that died mid-flight. The failed
// load is terminal; Reset starts a fresh activation.
var ErrLoadFailed = errors.New("catalog load failed")

// Catalog is the slice of the book store the catalog view model needs.
// Reads follow the store's degrade-to-empty contract.
type Catalog interface {
	PublishedBooks(ctx context.Context) []models.Book
	BooksByCategory(ctx context.Context, category string) []models.Book
}

// CatalogViewModel drives a catalog page: one store fetch per
// activation, then every search or sort change re-runs the filter/sort
// engine over the cached list with no further network access. Only a
// category change refetches.
type CatalogViewModel struct {
	store    Catalog
	state    State
	category string
	books    []models.Book
}

func NewCatalog(store Catalog) *CatalogViewModel {
	return &CatalogViewModel{store: store, state: StateIdle}
}

func (vm *CatalogViewModel) State() State { return vm.state }

// Load fetches the base list for the page. An empty category loads the
// full published set. Calling Load again with the same category while
// Ready is a no-op; a different category triggers a fresh fetch. After
// a failure only Reset restarts the lifecycle.
func (vm *CatalogViewModel) Load(ctx context.Context, category string) error {
	if vm.state == StateFailed {
		return ErrLoadFailed
	}
	if vm.state == StateReady && vm.category == category {
		return nil
	}
	vm.state = StateLoading
	vm.category = category

	var books []models.Book
	if category == "" {
		books = vm.store.PublishedBooks(ctx)
	} else {
		books = vm.store.BooksByCategory(ctx, category)
	}
	if err := ctx.Err(); err != nil {
		vm.state = StateFailed
		return err
	}
	vm.books = books
	vm.state = StateReady
	return nil
}

// Visible applies the filter/sort engine to the loaded list. Purely
// local; callers invoke it on every search or sort change. Before a
// successful Load it returns an empty list.
func (vm *CatalogViewModel) Visible(searchTerm string, key catalog.SortKey) []models.Book {
	if vm.state != StateReady {
		return []models.Book{}
	}
	return catalog.Apply(vm.books, searchTerm, key)
}

// Reset returns the view model to Idle for a fresh activation.
func (vm *CatalogViewModel) Reset() {
	vm.state = StateIdle
	vm.category = ""
	vm.books = nil
}
