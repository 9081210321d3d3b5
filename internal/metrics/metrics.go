package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated is a Prometheus counter for tracking the total number of products created.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "The total number of products created",
	})

	// ProductsDeleted is a Prometheus counter for tracking the total number of products deleted.
	ProductsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_deleted_total",
		Help: "The total number of products deleted",
	})

	// BookingsCreated is a Prometheus counter for tracking the total number of bookings submitted.
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookings_created_total",
		Help: "The total number of bookings submitted",
	})

	// FeaturedImagesUploaded is a Prometheus counter for tracking hero image uploads.
	FeaturedImagesUploaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "featured_images_uploaded_total",
		Help: "The total number of featured images uploaded",
	})

	// WishlistUpdates is a Prometheus counter for tracking public wishlist adjustments.
	WishlistUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wishlist_updates_total",
		Help: "The total number of wishlist adjustments",
	})
)
