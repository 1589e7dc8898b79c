package main

import (
	"fmt"
	"strings"

	"github.com/niksmo/techmarket/config"
	"github.com/niksmo/techmarket/internal/adapter/dispatch"
	"github.com/niksmo/techmarket/internal/app"
	"github.com/niksmo/techmarket/pkg/sigctx"
)

// The binary wires the core and plays a short session against the
// dispatcher, rendering each returned view as text. It stands in
// for the external presentation layer.
func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()

	storefront := app.New(cfg)
	defer storefront.Close()

	storefront.Start()

	d := storefront.Dispatcher()

	session := []dispatch.Action{
		{Kind: dispatch.KindFilterCategory, Category: "smartphones"},
		{Kind: dispatch.KindSort, SortKey: "price_asc"},
		{Kind: dispatch.KindAddToCart, ProductID: 1},
		{Kind: dispatch.KindAddToCart, ProductID: 1},
		{Kind: dispatch.KindToggleWishlist, ProductID: 4},
		{Kind: dispatch.KindClearFilters},
		{Kind: dispatch.KindPriceBounds, MinPrice: "50000", MaxPrice: "100000"},
		{Kind: dispatch.KindLoadMore},
		{Kind: dispatch.KindCheckout, Delivery: "express"},
	}

	for _, a := range session {
		select {
		case <-sigCtx.Done():
			return
		default:
		}
		render(a, d.Dispatch(a))
	}

	stats := storefront.Stats()
	fmt.Printf("session stats: orders=%d revenue=%d\n",
		stats.TotalOrders, stats.TotalRevenue)
}

func render(a dispatch.Action, v dispatch.View) {
	fmt.Printf("--- %s\n", a.Kind)
	fmt.Printf("показано: %d из %d\n", v.Shown, v.Total)

	for _, p := range v.Products {
		var marks []string
		if !p.InStock {
			marks = append(marks, "нет в наличии")
		}
		if p.DiscountPrice > 0 {
			marks = append(marks, "скидка")
		}
		if p.InWishlist {
			marks = append(marks, "❤️")
		}
		suffix := ""
		if len(marks) > 0 {
			suffix = " [" + strings.Join(marks, ", ") + "]"
		}
		fmt.Printf("%s %s — %d тенге.%s\n",
			p.CategoryIcon, p.Name, p.EffectivePrice, suffix)
	}

	if n := v.Cart.Count; n > 0 {
		fmt.Printf("корзина: %d шт., %d тенге.\n", n, v.Cart.Subtotal)
	}
	if v.Notice != nil {
		fmt.Println(v.Notice.Text)
	}
	if r := v.Receipt; r != nil {
		fmt.Printf("заказ %s: %d шт., итого %d тенге. (доставка +%d)\n",
			r.OrderID, r.ItemCount, r.Total, r.Surcharge)
	}
}
