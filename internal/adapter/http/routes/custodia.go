package routes

import (
	"custodia_cheques/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheques        = "/cheques"
	PathRemessas       = "/remessas"
	PathEstornos       = "/estornos"
	PathClientes       = "/clientes"
	PathClassificacoes = "/classificacoes"
)

func addCustodiaRoutes(
	rg *gin.RouterGroup,
	chequeHandler *handlers.ChequeHandler,
	remessaHandler *handlers.RemessaHandler,
	estornoHandler *handlers.EstornoHandler,
	clienteHandler *handlers.ClienteHandler,
) {
	cheques := rg.Group(PathCheques)
	{
		cheques.POST("", chequeHandler.CreateCheque)
		cheques.GET("", chequeHandler.ListCheques)
		cheques.GET("/:id", chequeHandler.GetCheque)
		cheques.PUT("/:id", chequeHandler.UpdateCheque)
		cheques.DELETE("/:id", chequeHandler.DeleteCheque)
	}

	remessas := rg.Group(PathRemessas)
	{
		remessas.POST("", remessaHandler.CreateRemessa)
		remessas.GET("", remessaHandler.ListRemessas)
		remessas.GET("/:id", remessaHandler.GetRemessa)
		remessas.POST("/:id/finalizar", remessaHandler.FinalizarRemessa)
		remessas.POST("/:id/cheques", remessaHandler.AppendCheque)
	}

	estornos := rg.Group(PathEstornos)
	{
		estornos.POST("", estornoHandler.CreateEstorno)
		estornos.GET("", estornoHandler.ListEstornos)
		estornos.GET("/:id", estornoHandler.GetEstorno)
		estornos.POST("/:id/cheques", estornoHandler.AddCheque)
		estornos.DELETE("/:id/cheques/:chequeId", estornoHandler.RemoveCheque)
	}

	clientes := rg.Group(PathClientes)
	{
		clientes.POST("", clienteHandler.CreateCliente)
		clientes.POST("/login", clienteHandler.Login)
		clientes.GET("", clienteHandler.ListClientes)
		clientes.GET("/:id", clienteHandler.GetCliente)
		clientes.DELETE("/:id", clienteHandler.DeleteCliente)
	}

	rg.GET(PathClassificacoes, handlers.ListClassificacoes)
}
