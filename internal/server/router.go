package server

import (
	"github.com/gin-gonic/gin"
)

// Handlers bundles the per-context API surfaces the router wires up.
type Handlers struct {
	OrderAPI  OrderAPI
	MemberAPI MemberAPI
	ItemAPI   ItemAPI
}

// Route describes one HTTP endpoint.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// NewRouter builds a gin engine with all back office routes attached.
func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.Default()
	for _, route := range routes(handlers) {
		switch route.Method {
		case "GET":
			router.GET(route.Pattern, route.HandlerFunc)
		case "POST":
			router.POST(route.Pattern, route.HandlerFunc)
		case "PUT":
			router.PUT(route.Pattern, route.HandlerFunc)
		case "PATCH":
			router.PATCH(route.Pattern, route.HandlerFunc)
		case "DELETE":
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func routes(h Handlers) []Route {
	return []Route{
		{"POST", "/orders", h.OrderAPI.PlaceOrder},
		{"POST", "/orders/:orderId/cancel", h.OrderAPI.CancelOrder},
		{"GET", "/orders/:orderId", h.OrderAPI.GetOrderByID},
		{"GET", "/orders", h.OrderAPI.FindOrders},

		{"POST", "/members", h.MemberAPI.Join},
		{"GET", "/members", h.MemberAPI.ListMembers},
		{"GET", "/members/:memberId", h.MemberAPI.GetMemberByID},
		{"PATCH", "/members/:memberId", h.MemberAPI.UpdateMemberName},

		{"POST", "/items", h.ItemAPI.AddItem},
		{"GET", "/items", h.ItemAPI.ListItems},
		{"GET", "/items/:itemId", h.ItemAPI.GetItemByID},
		{"PUT", "/items/:itemId", h.ItemAPI.UpdateItem},
	}
}
