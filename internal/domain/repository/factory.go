package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Orders() OrderRepository
	Wallets() WalletRepository
	Transactions() TransactionRepository
	Complexes() ComplexRepository
	Buildings() BuildingRepository
	Apartments() ApartmentRepository
	CommercialUnits() CommercialUnitRepository
	Reviews() ReviewRepository
	Favorites() FavoriteRepository
	Promotions() PromotionRepository
	Images() ImageRepository
}
