// Package storagetest provides an in-memory storage.IStorage that mirrors the
// Postgres repositories closely enough for service and handler tests.
package storagetest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"driverapp/pkg/models"
	"driverapp/storage"
)

// ErrNullTasks mimics the NOT NULL violation on drivers.tasks.
var ErrNullTasks = errors.New(`null value in column "tasks" violates not-null constraint`)

type Store struct {
	mu sync.Mutex

	// Err, when set, is returned by every repository call.
	Err error

	now    func() time.Time
	nextID int64

	drivers       []*models.Driver
	rides         []*models.ScheduledRide
	customers     []*models.CustomerProfile
	notifications []*models.DriverNotification
	dropped       []string
}

func New() *Store {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &Store{}
	s.now = func() time.Time {
		return base.Add(time.Duration(s.nextID) * time.Second)
	}
	return s
}

func (s *Store) Driver() storage.IDriverStorage             { return driverRepo{s} }
func (s *Store) Ride() storage.IRideStorage                 { return rideRepo{s} }
func (s *Store) Customer() storage.ICustomerStorage         { return customerRepo{s} }
func (s *Store) Notification() storage.INotificationStorage { return notificationRepo{s} }
func (s *Store) Schema() storage.ISchemaStorage             { return schemaRepo{s} }
func (s *Store) Close()                                     {}
func (s *Store) GetPool() *pgxpool.Pool                     { return nil }

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// DriverCount reports how many driver rows exist.
func (s *Store) DriverCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drivers)
}

// CustomerCount reports how many customer_profile rows exist.
func (s *Store) CustomerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.customers)
}

// Dropped lists the tables dropped through the schema repository, in order.
func (s *Store) Dropped() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.dropped...)
}

type driverRepo struct{ s *Store }

func (r driverRepo) Create(_ context.Context, req *models.RegisterDriverRequest) (*models.Driver, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	if req.Tasks == nil {
		return nil, ErrNullTasks
	}
	if req.UID != nil {
		for _, d := range r.s.drivers {
			if d.UID != nil && *d.UID == *req.UID {
				return nil, fmt.Errorf("duplicate key value violates unique constraint: uid %q", *req.UID)
			}
		}
	}
	d := &models.Driver{
		ID:             r.s.id(),
		UID:            req.UID,
		Name:           req.Name,
		Subname:        req.Subname,
		CarName:        req.CarName,
		Plate:          req.Plate,
		DriverImageURL: req.DriverImageURL,
		CarImageURL:    req.CarImageURL,
		Tasks:          append([]string{}, req.Tasks...),
		FCMToken:       req.FCMToken,
	}
	r.s.drivers = append(r.s.drivers, d)
	c := *d
	return &c, nil
}

func (r driverRepo) GetByUID(_ context.Context, uid string) (*models.Driver, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, d := range r.s.drivers {
		if d.UID != nil && *d.UID == uid {
			c := *d
			return &c, nil
		}
	}
	return nil, nil
}

func (r driverRepo) GetByID(_ context.Context, id int64) (*models.DriverProjection, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, d := range r.s.drivers {
		if d.ID == id {
			return d.Projection(), nil
		}
	}
	return nil, nil
}

func (r driverRepo) GetAll(context.Context) ([]*models.Driver, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []*models.Driver{}
	for _, d := range r.s.drivers {
		c := *d
		out = append(out, &c)
	}
	return out, nil
}

func (r driverRepo) GetFCMToken(_ context.Context, id int64) (*string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, d := range r.s.drivers {
		if d.ID == id {
			token := ""
			if d.FCMToken != nil {
				token = *d.FCMToken
			}
			return &token, nil
		}
	}
	return nil, nil
}

func (r driverRepo) UpdateFCMToken(_ context.Context, uid, token string) (*models.Driver, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, d := range r.s.drivers {
		if d.UID != nil && *d.UID == uid {
			t := token
			d.FCMToken = &t
			c := *d
			return &c, nil
		}
	}
	return nil, nil
}

type rideRepo struct{ s *Store }

func (r rideRepo) Create(_ context.Context, req *models.CreateRideRequest) (*models.ScheduledRide, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	ride := &models.ScheduledRide{
		ID:            r.s.id(),
		UserID:        req.UserID,
		DriverName:    req.DriverName,
		Car:           req.Car,
		Plate:         req.Plate,
		Pickup:        req.Pickup,
		Destination:   req.Destination,
		Datetime:      req.Datetime,
		PaymentMethod: req.PaymentMethod,
		Distance:      req.Distance,
		EstimatedTime: req.EstimatedTime,
		Price:         req.Price,
		Status:        req.Status,
		CreatedAt:     r.s.now(),
	}
	r.s.rides = append(r.s.rides, ride)
	c := *ride
	return &c, nil
}

func (r rideRepo) GetByUser(_ context.Context, userID string) ([]*models.ScheduledRide, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []*models.ScheduledRide{}
	for _, ride := range r.s.rides {
		if ride.UserID != nil && *ride.UserID == userID {
			c := *ride
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Datetime != out[j].Datetime {
			return out[i].Datetime > out[j].Datetime
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

type customerRepo struct{ s *Store }

func (r customerRepo) Upsert(_ context.Context, req *models.UpsertCustomerRequest) (*models.CustomerProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, p := range r.s.customers {
		if p.UID == req.UID {
			if req.Name != nil {
				p.Name = req.Name
			}
			p.ProfileImageURL = req.ProfileImageURL
			c := *p
			return &c, nil
		}
	}
	p := &models.CustomerProfile{
		ID:              r.s.id(),
		UID:             req.UID,
		Name:            req.Name,
		ProfileImageURL: req.ProfileImageURL,
		CreatedAt:       r.s.now(),
	}
	r.s.customers = append(r.s.customers, p)
	c := *p
	return &c, nil
}

func (r customerRepo) GetByUID(_ context.Context, uid string) (*models.CustomerProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, p := range r.s.customers {
		if p.UID == uid {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

type notificationRepo struct{ s *Store }

func (r notificationRepo) Create(_ context.Context, req *models.CreateNotificationRequest) (*models.DriverNotification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	n := &models.DriverNotification{
		ID:             r.s.id(),
		DriverUID:      req.DriverUID,
		Title:          req.Title,
		PickupLocation: req.PickupLocation,
		Destination:    req.Destination,
		ImageURL:       req.ImageURL,
		CreatedAt:      r.s.now(),
	}
	r.s.notifications = append(r.s.notifications, n)
	c := *n
	return &c, nil
}

func (r notificationRepo) GetByDriver(_ context.Context, driverUID string) ([]*models.DriverNotification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []*models.DriverNotification{}
	for i := len(r.s.notifications) - 1; i >= 0; i-- {
		if n := r.s.notifications[i]; n.DriverUID == driverUID {
			c := *n
			out = append(out, &c)
		}
	}
	return out, nil
}

type schemaRepo struct{ s *Store }

func (schemaRepo) EnsureTables(context.Context) {}

func (r schemaRepo) DropTable(_ context.Context, table string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if !managedTable(table) {
		return fmt.Errorf("unknown table %q", table)
	}
	r.s.dropped = append(r.s.dropped, table)
	return nil
}

// managedTables is the Postgres creation order.
var managedTables = []string{"drivers", "scheduled_rides", "customer_profile", "driver_notifications"}

func managedTable(name string) bool {
	for _, t := range managedTables {
		if t == name {
			return true
		}
	}
	return false
}

func (r schemaRepo) DropAll(ctx context.Context) error {
	for i := len(managedTables) - 1; i >= 0; i-- {
		t := managedTables[i]
		if err := r.DropTable(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
