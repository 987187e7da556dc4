package util

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"roomscout/models"
)

const PRICE_HISTOGRAM_BUCKETS = 8

// PlotPriceHistogram generates an HTML file rendering the nightly price
// distribution of a result set.
func PlotPriceHistogram(rooms []models.Room) {
	if len(rooms) == 0 {
		fmt.Println("No rooms to plot")
		return
	}

	prices := make([]float64, len(rooms))
	for i, r := range rooms {
		prices[i] = r.Price
	}
	sort.Float64s(prices)

	min := prices[0]
	max := prices[len(prices)-1]
	width := (max - min) / PRICE_HISTOGRAM_BUCKETS
	if width == 0 {
		width = 1 // all rooms priced identically
	}

	labels := make([]string, PRICE_HISTOGRAM_BUCKETS)
	counts := make([]opts.BarData, PRICE_HISTOGRAM_BUCKETS)
	buckets := make([]int, PRICE_HISTOGRAM_BUCKETS)
	for _, p := range prices {
		idx := int((p - min) / width)
		if idx >= PRICE_HISTOGRAM_BUCKETS {
			idx = PRICE_HISTOGRAM_BUCKETS - 1
		}
		buckets[idx]++
	}
	for i := 0; i < PRICE_HISTOGRAM_BUCKETS; i++ {
		lo := min + float64(i)*width
		labels[i] = fmt.Sprintf("%.0f-%.0f", lo, lo+width)
		counts[i] = opts.BarData{Value: buckets[i]}
	}

	// Create a new Bar chart.
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Room Price Distribution",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Nightly price distribution",
		}),
	)

	bar.SetXAxis(labels).AddSeries("Rooms", counts)

	// Create an HTML file to render the chart.
	f, err := os.Create("price_distribution.html")
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Price distribution chart generated: price_distribution.html")
}
