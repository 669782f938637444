package server

import (
	"agarwood/internal/handler"
	repo "agarwood/internal/repository"
	"agarwood/internal/usecase"
	auth "agarwood/internal/usecase/auth_usecase"
	"agarwood/internal/validator"
)

// Stores は永続化の実装一式（postgres / mongo / memory のどれか）
type Stores struct {
	Products repo.ProductRepository
	Carts    repo.CartRepository
	Orders   repo.OrderRepository
	Users    repo.UserRepository
	Contacts repo.ContactRepository
	Tx       repo.TransactionManager
}

// NewHandlers は usecase と handler を組み立てる
func NewHandlers(st Stores, jwtSvc *auth.JWTService, bcryptCost int) Handlers {
	//usecaseに渡す部品
	idGen := usecase.UUIDGenerator{}
	clock := usecase.SystemClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(bcryptCost)
	verifier := auth.NewBcryptPasswordVerifier()
	v := validator.NewAuthValidator()

	productUC := usecase.NewProductUsecase(st.Products, idGen, clock)
	cartUC := usecase.NewCartUsecase(st.Carts, st.Products, idGen, clock)
	orderUC := usecase.NewOrderUsecase(st.Tx, st.Orders, idGen, clock)
	profileUC := usecase.NewProfileUsecase(st.Users, clock)
	contactUC := usecase.NewContactUsecase(st.Contacts, idGen, clock)
	registerUC := auth.NewRegisterUserUsecase(st.Users, v, hasher, jwtSvc, idGen, clock)
	loginUC := auth.NewLoginUsecase(st.Users, v, verifier, jwtSvc, clock)

	return Handlers{
		Product:      handler.NewProductHandler(productUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		Cart:         handler.NewCartHandler(cartUC),
		Order:        handler.NewOrderHandler(orderUC),
		Auth:         handler.NewAuthHandler(registerUC, loginUC, profileUC),
		Contact:      handler.NewContactHandler(contactUC),
	}
}
