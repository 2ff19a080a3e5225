package main

import (
	"github.com/pivolan/listing_analyzer/domain/models"
)

// PartitionByGroup returns the listings belonging to group, in input order.
func PartitionByGroup(listings []models.Listing, group models.Group) []models.Listing {
	var partition []models.Listing
	for _, l := range listings {
		if l.Group == group {
			partition = append(partition, l)
		}
	}
	return partition
}
