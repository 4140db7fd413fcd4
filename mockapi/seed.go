package mockapi

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/flexipack-labs/order-portal/models"
)

var orderTypes = []string{
	"Packaging Films",
	"Aseptic Liquid Packaging",
	"Chemicals",
	"Holography",
	"Engineering Machinery",
}

var itemsByType = map[string][]string{
	"Packaging Films":          {"BOPP Film", "BOPET Film", "CPP Film", "Metalized Film"},
	"Aseptic Liquid Packaging": {"Aseptic Brick Pack", "Aseptic Pillow Pack"},
	"Chemicals":                {"Speciality Coating - Primer GD-II", "Flexo Ink", "Lamination Adhesive"},
	"Holography":               {"Holographic Film", "Security Labels", "Hot Stamping Foil"},
	"Engineering Machinery":    {"Slitting Machine", "Pouch Making Machine", "Printing Machine"},
}

type buyer struct {
	name, address, gst string
}

var buyers = []buyer{
	{"XYZ Industries Pvt Ltd", "Plot No 12, Block-A, Sector-XX, Gurgaon, Haryana", "GSTIN123456567"},
	{"ABC Foods Corp", "Industrial Area, Phase 2, Manesar, Haryana", "GSTIN987654321"},
	{"Global Beverages Ltd", "Tech Park, Whitefield, Bangalore, Karnataka", "GSTIN456789123"},
}

var carriers = []string{"BlueDart", "Delhivery", "Gati", "SafeExpress"}

var seedStatuses = []string{
	models.StatusOrdered,
	models.StatusPackaging,
	models.StatusShipped,
	models.StatusDelivered,
}

// SeedOrders generates n orders of plausible shape: lifecycle-consistent
// dates, 10-30% advance payments and a 60-day payment term. A fixed rng
// makes the dataset reproducible for tests.
func SeedOrders(db *gorm.DB, n int, rng *rand.Rand) error {
	now := time.Now()

	for i := 0; i < n; i++ {
		orderType := orderTypes[rng.Intn(len(orderTypes))]
		items := itemsByType[orderType]
		item := items[rng.Intn(len(items))]
		b := buyers[rng.Intn(len(buyers))]
		status := seedStatuses[rng.Intn(len(seedStatuses))]

		orderDate := now.AddDate(0, 0, -(1 + rng.Intn(180)))

		var shippedDate, deliveredDate time.Time
		expected := orderDate.AddDate(0, 0, 4+rng.Intn(10))
		switch status {
		case models.StatusShipped:
			shippedDate = orderDate.AddDate(0, 0, 1+rng.Intn(3))
		case models.StatusDelivered:
			shippedDate = orderDate.AddDate(0, 0, 1+rng.Intn(3))
			deliveredDate = shippedDate.AddDate(0, 0, 2+rng.Intn(4))
			if deliveredDate.After(now) {
				deliveredDate = now.AddDate(0, 0, -rng.Intn(3))
			}
			if shippedDate.After(deliveredDate) {
				shippedDate = deliveredDate.AddDate(0, 0, -(1 + rng.Intn(3)))
			}
		}

		quantity := (1 + rng.Intn(50)) * 100
		unitCost := float64(100 + rng.Intn(4901))
		total := float64(quantity) * unitCost
		advance := math.Round(total*float64(10+rng.Intn(21))) / 100

		record := OrderRecord{
			OrderNo:          fmt.Sprintf("ORD-%d", 10000+i),
			OrderDate:        orderDate.Format(models.DateLayout),
			CustomerRef:      fmt.Sprintf("REF-%04d", 1000+rng.Intn(9000)),
			OrderStatus:      status,
			OrderType:        orderType,
			Item:             item,
			Structure:        fmt.Sprintf("%d Ply Laminate", 2+rng.Intn(3)),
			Thickness:        fmt.Sprintf("%d mic", 12+rng.Intn(80)),
			Width:            fmt.Sprintf("%d mm", 300+rng.Intn(900)),
			Quantity:         quantity,
			UnitCost:         unitCost,
			TotalAmount:      total,
			AdvanceAmount:    advance,
			CreditDays:       60,
			ExpectedDelivery: expected.Format(models.DateTimeLayout),
			PaymentDueDate:   orderDate.AddDate(0, 0, 60).Format(models.DateLayout),
			BuyerName:        b.name,
			BuyerAddress:     b.address,
			BuyerGST:         b.gst,
		}

		if !shippedDate.IsZero() {
			record.ShippedDate = shippedDate.Format(models.DateTimeLayout)
			record.Carrier = carriers[rng.Intn(len(carriers))]
			record.AWB = fmt.Sprintf("AWB%09d", rng.Intn(1000000000))
			record.ShipmentStatus = "In Transit"
		}
		if !deliveredDate.IsZero() {
			record.DeliveredDate = deliveredDate.Format(models.DateTimeLayout)
			record.ShipmentStatus = "Delivered"
		}

		if err := db.Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedUser stores a bcrypt-hashed login credential.
func SeedUser(db *gorm.DB, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&PortalUser{Username: username, PasswordHash: string(hash)}).Error
}
