package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/NexoCRM/api-crm/internal/auth"
	"github.com/NexoCRM/api-crm/internal/contacto"
	"github.com/NexoCRM/api-crm/internal/cotizacion"
	"github.com/NexoCRM/api-crm/internal/deal"
	"github.com/NexoCRM/api-crm/internal/empresa"
	"github.com/NexoCRM/api-crm/internal/reportes"
	"github.com/NexoCRM/api-crm/internal/usuario"
	"github.com/NexoCRM/api-crm/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/shopspring/decimal"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: archivo .env no encontrado, usando variables del sistema")
	}

	// Los montos viajan como números JSON, igual que en el frontend.
	decimal.MarshalJSONWithoutQuotes = true

	conexion, err := db.Conectar()
	if err != nil {
		log.Fatal("Error al conectar a la base de datos:", err)
	}

	// AutoMigrate para todos los modelos
	if err := conexion.AutoMigrate(
		&usuario.Usuario{},
		&empresa.Empresa{},
		&contacto.Contacto{},
		&deal.Deal{},
		&cotizacion.Cotizacion{},
		&cotizacion.ContadorCotizacion{},
	); err != nil {
		log.Fatal("Error en AutoMigrate:", err)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(conexion)
	contactoHandler := contacto.NewHandler(conexion)
	empresaHandler := empresa.NewHandler(conexion)
	dealHandler := deal.NewHandler(conexion)
	cotizacionHandler := cotizacion.NewHandler(conexion)
	reportesHandler := reportes.NewHandler(conexion)

	// Router
	r := mux.NewRouter()

	// Rutas públicas
	r.HandleFunc("/registro", usuarioHandler.Registro).Methods("POST")
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rutas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.Middleware)

	api.HandleFunc("/perfil", usuarioHandler.Perfil).Methods("GET")

	// Rutas de contactos
	api.HandleFunc("/contactos", contactoHandler.Crear).Methods("POST")
	api.HandleFunc("/contactos", contactoHandler.Listar).Methods("GET")
	api.HandleFunc("/contactos/{id}", contactoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contactos/{id}", contactoHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/contactos/{id}", contactoHandler.Eliminar).Methods("DELETE")

	// Rutas de empresas
	api.HandleFunc("/empresas", empresaHandler.Crear).Methods("POST")
	api.HandleFunc("/empresas", empresaHandler.Listar).Methods("GET")
	api.HandleFunc("/empresas/{id}", empresaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/empresas/{id}", empresaHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/empresas/{id}", empresaHandler.Eliminar).Methods("DELETE")

	// Rutas de deals
	api.HandleFunc("/deals", dealHandler.Crear).Methods("POST")
	api.HandleFunc("/deals", dealHandler.Listar).Methods("GET")
	api.HandleFunc("/deals/{id}", dealHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/deals/{id}", dealHandler.CambiarEtapa).Methods("PATCH")
	api.HandleFunc("/deals/{id}", dealHandler.Eliminar).Methods("DELETE")

	// Rutas de cotizaciones
	api.HandleFunc("/cotizaciones", cotizacionHandler.Crear).Methods("POST")
	api.HandleFunc("/cotizaciones", cotizacionHandler.Listar).Methods("GET")
	api.HandleFunc("/cotizaciones/{id}", cotizacionHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/cotizaciones/{id}", cotizacionHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/cotizaciones/{id}", cotizacionHandler.CambiarEstado).Methods("PATCH")
	api.HandleFunc("/cotizaciones/{id}", cotizacionHandler.Eliminar).Methods("DELETE")

	// Reportes
	api.HandleFunc("/reportes/pipeline", reportesHandler.Pipeline).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{os.Getenv("CORS_ORIGIN")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	puerto := os.Getenv("PORT")
	if puerto == "" {
		puerto = "8080"
	}

	fmt.Printf("Servidor corriendo en http://localhost:%s\n", puerto)
	log.Fatal(http.ListenAndServe(":"+puerto, c.Handler(r)))
}
