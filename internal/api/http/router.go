package http

import (
	"bibliothek-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all REST endpoints below the configured base path
// (historically /bibliothek).
func NewRouter(
	basePath string,
	customers service.CustomerService,
	addresses service.AddressService,
	media service.MediumService,
	borrowings service.BorrowingService,
) *mux.Router {
	root := mux.NewRouter()
	root.Use(requestLogging)
	r := root.PathPrefix(basePath).Subrouter()

	customerHandler := NewCustomerHandler(customers, borrowings)
	r.HandleFunc("/customers", customerHandler.List).Methods("GET")
	r.HandleFunc("/customers", customerHandler.Create).Methods("POST")
	r.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Get).Methods("GET")
	r.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Update).Methods("PUT")
	r.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Delete).Methods("DELETE")
	r.HandleFunc("/customers/{id:[0-9]+}/borrowings", customerHandler.ListBorrowings).Methods("GET")

	addressHandler := NewAddressHandler(addresses)
	r.HandleFunc("/addresses", addressHandler.List).Methods("GET")
	r.HandleFunc("/addresses", addressHandler.Create).Methods("POST")
	r.HandleFunc("/addresses/{id:[0-9]+}", addressHandler.Get).Methods("GET")
	r.HandleFunc("/addresses/{id:[0-9]+}", addressHandler.Update).Methods("PUT")
	r.HandleFunc("/addresses/{id:[0-9]+}", addressHandler.Delete).Methods("DELETE")

	mediumHandler := NewMediumHandler(media)
	r.HandleFunc("/media", mediumHandler.List).Methods("GET")
	r.HandleFunc("/media", mediumHandler.Create).Methods("POST")
	r.HandleFunc("/media/{id:[0-9]+}", mediumHandler.Get).Methods("GET")
	r.HandleFunc("/media/{id:[0-9]+}", mediumHandler.Update).Methods("PUT")
	r.HandleFunc("/media/{id:[0-9]+}", mediumHandler.Delete).Methods("DELETE")

	borrowingHandler := NewBorrowingHandler(borrowings)
	r.HandleFunc("/borrowings", borrowingHandler.List).Methods("GET")
	r.HandleFunc("/borrowings", borrowingHandler.Create).Methods("POST")
	r.HandleFunc("/borrowings/media/{mediumId:[0-9]+}", borrowingHandler.GetByMedium).Methods("GET")
	r.HandleFunc("/borrowings/media/{mediumId:[0-9]+}", borrowingHandler.Extend).Methods("PUT")
	r.HandleFunc("/borrowings/media/{mediumId:[0-9]+}", borrowingHandler.Return).Methods("DELETE")

	return root
}
