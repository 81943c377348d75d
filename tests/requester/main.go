package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:9000/checkout"

var skus = []string{"JRS-CLASSIC", "JRS-PRO", "SHR-CLASSIC", "SCK-TEAM"}

type item struct {
	SKU      string `json:"sku"`
	Size     string `json:"size,omitempty"`
	Quantity int    `json:"quantity"`
}

type checkoutRequest struct {
	UserID           string `json:"user_id"`
	Items            []item `json:"items"`
	ClientTotalMinor int64  `json:"client_total_minor"`
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomCheckout() checkoutRequest {
	items := make([]item, rand.Intn(3)+1)
	var total int64
	for i := range items {
		qty := rand.Intn(30) + 1
		items[i] = item{
			SKU:      skus[rand.Intn(len(skus))],
			Size:     []string{"S", "M", "L", "XL"}[rand.Intn(4)],
			Quantity: qty,
		}
		total += int64(qty) * 10_000
	}

	// иногда заявляем заведомо неверную сумму, чтобы проверить сверку
	if rand.Intn(5) == 0 {
		total = total / 2
	}

	return checkoutRequest{
		UserID:           fmt.Sprintf("user-%d", rand.Intn(100)),
		Items:            items,
		ClientTotalMinor: total,
	}
}

func doRequest() {
	body, _ := json.Marshal(randomCheckout())

	resp, err := http.Post(baseURL, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("POST", baseURL, "->", resp.Status)
		resp.Body.Close()
	}
}
