package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Carts() CartRepository
	Orders() OrderRepository
	Catalog() CatalogRepository
	Profiles() ProfileRepository
	ChatLog() ChatRepository
}
