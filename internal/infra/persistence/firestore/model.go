package firestore

import (
	"time"

	"quickbite/internal/domain/entity"
	"quickbite/internal/errors"

	"github.com/google/uuid"
)

// Document identifiers double as entity identifiers, so the structs below
// never carry an id field of their own.

type orderDoc struct {
	CustomerID   string         `firestore:"customer_id"`
	RestaurantID string         `firestore:"restaurant_id"`
	RiderID      string         `firestore:"rider_id"`
	Items        []orderItemDoc `firestore:"items"`
	Total        float64        `firestore:"total"`
	Status       string         `firestore:"status"`
	Delivery     locationDoc    `firestore:"delivery"`
	PickupCode   string         `firestore:"pickup_code"`
	CreatedAt    time.Time      `firestore:"created_at"`
	UpdatedAt    time.Time      `firestore:"updated_at"`
}

type orderItemDoc struct {
	MenuItemID string  `firestore:"menu_item_id"`
	Name       string  `firestore:"name"`
	UnitPrice  float64 `firestore:"unit_price"`
	Quantity   int     `firestore:"quantity"`
}

type locationDoc struct {
	ID        string  `firestore:"id"`
	Label     string  `firestore:"label"`
	Address   string  `firestore:"address"`
	Landmark  string  `firestore:"landmark"`
	Latitude  float64 `firestore:"latitude"`
	Longitude float64 `firestore:"longitude"`
}

type menuItemDoc struct {
	RestaurantID string    `firestore:"restaurant_id"`
	Name         string    `firestore:"name"`
	Description  string    `firestore:"description"`
	Price        float64   `firestore:"price"`
	Category     string    `firestore:"category"`
	ImageURL     string    `firestore:"image_url"`
	Vegetarian   bool      `firestore:"vegetarian"`
	Available    bool      `firestore:"available"`
	Calories     *int      `firestore:"calories"`
	CreatedAt    time.Time `firestore:"created_at"`
	UpdatedAt    time.Time `firestore:"updated_at"`
}

type userDoc struct {
	Phone        string        `firestore:"phone"`
	Name         string        `firestore:"name"`
	Email        string        `firestore:"email"`
	Role         string        `firestore:"role"`
	RestaurantID string        `firestore:"restaurant_id"`
	Locations    []locationDoc `firestore:"locations"`
	FCMToken     string        `firestore:"fcm_token"`
	CreatedAt    time.Time     `firestore:"created_at"`
	UpdatedAt    time.Time     `firestore:"updated_at"`
}

type challengeDoc struct {
	Phone     string    `firestore:"phone"`
	CodeHash  string    `firestore:"code_hash"`
	Attempts  int       `firestore:"attempts"`
	ExpiresAt time.Time `firestore:"expires_at"`
	CreatedAt time.Time `firestore:"created_at"`
}

func toOrderDoc(order *entity.Order) orderDoc {
	doc := orderDoc{
		CustomerID:   order.CustomerID.String(),
		RestaurantID: order.RestaurantID.String(),
		Items:        make([]orderItemDoc, 0, len(order.Items)),
		Total:        order.Total,
		Status:       order.Status.String(),
		Delivery:     toLocationDoc(order.Delivery),
		PickupCode:   order.PickupCode,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
	if order.RiderID != nil {
		doc.RiderID = order.RiderID.String()
	}
	for _, item := range order.Items {
		doc.Items = append(doc.Items, orderItemDoc{
			MenuItemID: item.MenuItemID.String(),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		})
	}

	return doc
}

func (d orderDoc) toEntity(id string) (*entity.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrap(err, "parse order id")
	}
	customerID, err := uuid.Parse(d.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "parse customer id")
	}
	restaurantID, err := uuid.Parse(d.RestaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "parse restaurant id")
	}

	order := &entity.Order{
		ID:           orderID,
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Items:        make([]entity.OrderItem, 0, len(d.Items)),
		Total:        d.Total,
		Status:       entity.OrderStatus(d.Status),
		Delivery:     d.Delivery.toEntity(),
		PickupCode:   d.PickupCode,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.RiderID != "" {
		riderID, err := uuid.Parse(d.RiderID)
		if err != nil {
			return nil, errors.Wrap(err, "parse rider id")
		}
		order.RiderID = &riderID
	}
	for _, item := range d.Items {
		menuItemID, err := uuid.Parse(item.MenuItemID)
		if err != nil {
			return nil, errors.Wrap(err, "parse menu item id")
		}
		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID: menuItemID,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		})
	}

	return order, nil
}

func toLocationDoc(location entity.Location) locationDoc {
	return locationDoc{
		ID:        location.ID.String(),
		Label:     location.Label.String(),
		Address:   location.Address,
		Landmark:  location.Landmark,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}

func (d locationDoc) toEntity() entity.Location {
	id, _ := uuid.Parse(d.ID)

	return entity.Location{
		ID:        id,
		Label:     entity.LocationLabel(d.Label),
		Address:   d.Address,
		Landmark:  d.Landmark,
		Latitude:  d.Latitude,
		Longitude: d.Longitude,
	}
}

func toMenuItemDoc(item *entity.MenuItem) menuItemDoc {
	return menuItemDoc{
		RestaurantID: item.RestaurantID.String(),
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		Category:     item.Category.String(),
		ImageURL:     item.ImageURL,
		Vegetarian:   item.Vegetarian,
		Available:    item.Available,
		Calories:     item.Calories,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func (d menuItemDoc) toEntity(id string) (*entity.MenuItem, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrap(err, "parse menu item id")
	}
	restaurantID, err := uuid.Parse(d.RestaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "parse restaurant id")
	}

	return &entity.MenuItem{
		ID:           itemID,
		RestaurantID: restaurantID,
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price,
		Category:     entity.Category(d.Category),
		ImageURL:     d.ImageURL,
		Vegetarian:   d.Vegetarian,
		Available:    d.Available,
		Calories:     d.Calories,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

func toUserDoc(user *entity.UserProfile) userDoc {
	doc := userDoc{
		Phone:     user.Phone,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		Locations: make([]locationDoc, 0, len(user.Locations)),
		FCMToken:  user.FCMToken,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.RestaurantID != nil {
		doc.RestaurantID = user.RestaurantID.String()
	}
	for _, location := range user.Locations {
		doc.Locations = append(doc.Locations, toLocationDoc(location))
	}

	return doc
}

func (d userDoc) toEntity(id string) (*entity.UserProfile, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrap(err, "parse user id")
	}

	user := &entity.UserProfile{
		ID:        userID,
		Phone:     d.Phone,
		Name:      d.Name,
		Email:     d.Email,
		Role:      entity.Role(d.Role),
		Locations: make([]entity.Location, 0, len(d.Locations)),
		FCMToken:  d.FCMToken,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.RestaurantID != "" {
		restaurantID, err := uuid.Parse(d.RestaurantID)
		if err != nil {
			return nil, errors.Wrap(err, "parse restaurant id")
		}
		user.RestaurantID = &restaurantID
	}
	for _, location := range d.Locations {
		user.Locations = append(user.Locations, location.toEntity())
	}

	return user, nil
}

func toChallengeDoc(challenge *entity.PhoneChallenge) challengeDoc {
	return challengeDoc{
		Phone:     challenge.Phone,
		CodeHash:  challenge.CodeHash,
		Attempts:  challenge.Attempts,
		ExpiresAt: challenge.ExpiresAt,
		CreatedAt: challenge.CreatedAt,
	}
}

func (d challengeDoc) toEntity(id string) (*entity.PhoneChallenge, error) {
	challengeID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrap(err, "parse challenge id")
	}

	return &entity.PhoneChallenge{
		ID:        challengeID,
		Phone:     d.Phone,
		CodeHash:  d.CodeHash,
		Attempts:  d.Attempts,
		ExpiresAt: d.ExpiresAt,
		CreatedAt: d.CreatedAt,
	}, nil
}
