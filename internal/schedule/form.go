package schedule

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/evserve/workshop-backend/internal/models"
)

// DebounceDelay is the quiet period before a conflict check fires.
const DebounceDelay = 300 * time.Millisecond

// State is the booking form's lifecycle state.
type State string

const (
	StateEditing    State = "editing"
	StateChecking   State = "checking"
	StateSubmitting State = "submitting"
	StateClosed     State = "closed"
)

// ConflictPolicy decides what a failed availability probe means.
type ConflictPolicy int

const (
	// FailOpen treats a probe error as "no known conflict". Matches the
	// historical behavior; a transient outage will not block booking.
	FailOpen ConflictPolicy = iota
	// FailClosed treats a probe error as a conflict.
	FailClosed
)

var (
	ErrMissingField        = errors.New("required field missing")
	ErrOutsideWorkingHours = errors.New("outside working hours")
	ErrConflict            = errors.New("time window conflicts with an existing booking")
	ErrFormClosed          = errors.New("form is closed")
)

// Draft is the appointment being edited.
type Draft struct {
	CustomerID string
	VehicleID  string
	ServiceID  string
	ResourceID string
	Start      time.Time
	End        time.Time
	Status     models.AppointmentStatus
	Notes      string
}

// Submission is the normalized payload handed to the submit collaborator.
// Start and end are absolute RFC 3339 timestamps.
type Submission struct {
	CustomerID string                   `json:"customerId"`
	VehicleID  string                   `json:"vehicleId"`
	ServiceID  string                   `json:"serviceId"`
	ResourceID string                   `json:"resourceId"`
	Start      string                   `json:"start"`
	End        string                   `json:"end"`
	Status     models.AppointmentStatus `json:"status"`
	Notes      string                   `json:"notes"`
}

// SubmitFunc receives the normalized appointment payload.
type SubmitFunc func(ctx context.Context, payload Submission) error

// Notifier surfaces validation and submit outcomes to the user.
type Notifier interface {
	Success(title, message string)
	Warning(title, message string)
	Error(title, message string)
}

// Config wires a Form to its collaborators.
type Config struct {
	Directory     Directory
	Submit        SubmitFunc
	Notifier      Notifier
	Policy        ConflictPolicy
	DebounceDelay time.Duration // defaults to DebounceDelay
	Clock         Clock         // defaults to the wall clock
	Existing      *models.Appointment
	DefaultStatus models.AppointmentStatus
}

// Form drives the booking dialog: it loads reference data, derives the end
// time from the selected service, debounces availability checks and gates
// submission on working hours and conflicts. All methods are safe for
// concurrent use; the debounced check runs on its own goroutine.
type Form struct {
	mu sync.Mutex

	dir      Directory
	submit   SubmitFunc
	notifier Notifier
	policy   ConflictPolicy
	clock    Clock
	debounce *Debouncer

	state     State
	draft     Draft
	excludeID string

	customers []models.Customer
	services  []models.Service
	resources []models.Resource
	vehicles  []models.Vehicle

	conflict *CheckResult
}

// NewForm creates a booking form. With cfg.Existing set the form edits
// that appointment; otherwise it drafts a new one starting now with a
// 60-minute window.
func NewForm(cfg Config) *Form {
	clock := cfg.Clock
	if clock == nil {
		clock = realClock{}
	}
	delay := cfg.DebounceDelay
	if delay == 0 {
		delay = DebounceDelay
	}
	status := cfg.DefaultStatus
	if status == "" {
		status = models.StatusPending
	}

	f := &Form{
		dir:      cfg.Directory,
		submit:   cfg.Submit,
		notifier: cfg.Notifier,
		policy:   cfg.Policy,
		clock:    clock,
		debounce: NewDebouncer(delay, clock),
		state:    StateEditing,
	}

	if cfg.Existing != nil {
		f.excludeID = cfg.Existing.ID
		f.draft = Draft{
			CustomerID: cfg.Existing.CustomerID,
			VehicleID:  cfg.Existing.VehicleID,
			ServiceID:  cfg.Existing.ServiceID,
			ResourceID: cfg.Existing.ResourceID,
			Start:      cfg.Existing.Start,
			End:        cfg.Existing.End,
			Status:     cfg.Existing.Status,
			Notes:      cfg.Existing.Notes,
		}
		if f.draft.Status == "" {
			f.draft.Status = status
		}
	} else {
		now := clock.Now().Truncate(time.Minute)
		f.draft = Draft{
			Start:  now,
			End:    now.Add(60 * time.Minute),
			Status: status,
		}
	}
	return f
}

// State returns the form's current lifecycle state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Draft returns a copy of the draft being edited.
func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Customers returns the loaded customer lookup list.
func (f *Form) Customers() []models.Customer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.customers
}

// Vehicles returns the vehicle list scoped to the selected customer.
func (f *Form) Vehicles() []models.Vehicle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.vehicles
}

// Services returns the loaded service lookup list.
func (f *Form) Services() []models.Service {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.services
}

// Resources returns the loaded resource lookup list.
func (f *Form) Resources() []models.Resource {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resources
}

// Conflict returns the last availability result, or nil when no check has
// completed yet.
func (f *Form) Conflict() *CheckResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.conflict
}

// LoadReferenceData fetches the customer, service and resource lookup
// lists. A failure falls back to the built-in sample lists so the form
// stays usable in demos. Results arriving after Close are discarded.
func (f *Form) LoadReferenceData(ctx context.Context) {
	customers, errCustomers := f.dir.Customers(ctx)
	services, errServices := f.dir.Services(ctx)
	resources, errResources := f.dir.Resources(ctx, "technician")

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateClosed {
		return
	}
	if errCustomers != nil || errServices != nil || errResources != nil {
		f.customers = fallbackCustomers()
		f.services = fallbackServices()
		f.resources = fallbackResources()
		return
	}
	f.customers = customers
	f.services = services
	f.resources = resources
}

// SetCustomer selects a customer. The vehicle list is cleared and the
// vehicle selection reset immediately, then the customer's vehicles are
// fetched; a fetch failure falls back to the built-in sample list.
func (f *Form) SetCustomer(ctx context.Context, customerID string) {
	f.mu.Lock()
	if f.state == StateClosed {
		f.mu.Unlock()
		return
	}
	f.draft.CustomerID = customerID
	f.draft.VehicleID = ""
	f.vehicles = nil
	if customerID == "" {
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()

	vehicles, err := f.dir.CustomerVehicles(ctx, customerID)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateClosed || f.draft.CustomerID != customerID {
		return
	}
	if err != nil {
		f.vehicles = fallbackVehicles()
		return
	}
	f.vehicles = vehicles
}

// SetVehicle selects a vehicle.
func (f *Form) SetVehicle(vehicleID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.VehicleID = vehicleID
}

// SetService selects a service and recomputes the end time from its
// duration.
func (f *Form) SetService(serviceID string) {
	f.mu.Lock()
	f.draft.ServiceID = serviceID
	f.recomputeEndLocked()
	f.mu.Unlock()
	f.scheduleCheck()
}

// SetStart moves the window start and recomputes the end time from the
// selected service's duration.
func (f *Form) SetStart(start time.Time) {
	f.mu.Lock()
	f.draft.Start = start
	f.recomputeEndLocked()
	f.mu.Unlock()
	f.scheduleCheck()
}

// SetEnd moves the window end.
func (f *Form) SetEnd(end time.Time) {
	f.mu.Lock()
	f.draft.End = end
	f.mu.Unlock()
	f.scheduleCheck()
}

// SetResource selects the technician or bay to book.
func (f *Form) SetResource(resourceID string) {
	f.mu.Lock()
	f.draft.ResourceID = resourceID
	f.mu.Unlock()
	f.scheduleCheck()
}

// SetStatus sets the appointment status.
func (f *Form) SetStatus(status models.AppointmentStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Status = status
}

// SetNotes sets the free-text notes.
func (f *Form) SetNotes(notes string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Notes = notes
}

// recomputeEndLocked derives end = start + service duration. No-op when no
// service is selected or the service has no duration metadata.
func (f *Form) recomputeEndLocked() {
	if f.draft.ServiceID == "" || f.draft.Start.IsZero() {
		return
	}
	for _, svc := range f.services {
		if svc.ID == f.draft.ServiceID {
			if svc.Duration <= 0 {
				return
			}
			f.draft.End = f.draft.Start.Add(time.Duration(svc.Duration) * time.Minute)
			return
		}
	}
}

// scheduleCheck debounces an availability probe once resource, start and
// end are all set.
func (f *Form) scheduleCheck() {
	f.mu.Lock()
	if f.state == StateClosed || f.draft.ResourceID == "" || f.draft.Start.IsZero() || f.draft.End.IsZero() {
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()
	f.debounce.Trigger(f.runCheck)
}

// runCheck performs the availability probe with the values current at fire
// time. A probe error is mapped by the conflict policy.
func (f *Form) runCheck() {
	f.mu.Lock()
	if f.state != StateEditing {
		f.mu.Unlock()
		return
	}
	f.state = StateChecking
	resourceID := f.draft.ResourceID
	start := f.draft.Start
	end := f.draft.End
	excludeID := f.excludeID
	f.mu.Unlock()

	res, err := f.dir.CheckWindow(context.Background(), resourceID, start, end, excludeID)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateClosed {
		return
	}
	f.state = StateEditing
	if err != nil {
		if f.policy == FailClosed {
			f.conflict = &CheckResult{Ok: false}
		} else {
			f.conflict = nil
		}
		return
	}
	f.conflict = &res
}

// ValidateEnd is the field-level validator for the end time: end must be
// after start and the window must fit the service hours.
func (f *Form) ValidateEnd() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.draft.Start
	e := f.draft.End
	if !e.After(s) {
		return errors.New("Ket thuc phai sau Bat dau")
	}
	if !WithinWorkingHours(s, e) {
		return errors.New("Thoi gian phai trong 08:00-18:00")
	}
	return nil
}

// Submit validates the draft and hands the normalized payload to the
// submit collaborator. Validation failures surface a toast and keep the
// form editable; a successful submit closes the form.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateClosed {
		f.mu.Unlock()
		return ErrFormClosed
	}

	if msg := f.missingFieldLocked(); msg != "" {
		f.mu.Unlock()
		f.notifier.Warning("Thieu thong tin", msg)
		return ErrMissingField
	}

	if !WithinWorkingHours(f.draft.Start, f.draft.End) {
		f.mu.Unlock()
		f.notifier.Error("Loi", "Thoi gian phai trong 08:00-18:00 va End > Start")
		return ErrOutsideWorkingHours
	}

	if f.conflict != nil && !f.conflict.Ok {
		f.mu.Unlock()
		f.notifier.Warning("Canh bao", "Khung gio bi trung. Vui long chon thoi gian khac.")
		return ErrConflict
	}

	f.state = StateSubmitting
	payload := Submission{
		CustomerID: f.draft.CustomerID,
		VehicleID:  f.draft.VehicleID,
		ServiceID:  f.draft.ServiceID,
		ResourceID: f.draft.ResourceID,
		Start:      f.draft.Start.UTC().Format(time.RFC3339),
		End:        f.draft.End.UTC().Format(time.RFC3339),
		Status:     f.draft.Status,
		Notes:      f.draft.Notes,
	}
	editing := f.excludeID != ""
	f.mu.Unlock()

	if err := f.submit(ctx, payload); err != nil {
		f.mu.Lock()
		f.state = StateEditing
		f.mu.Unlock()
		msg := err.Error()
		if msg == "" {
			msg = "Khong the luu lich hen"
		}
		f.notifier.Error("Loi", msg)
		return err
	}

	if editing {
		f.notifier.Success("Thanh cong", "Luu lich hen thanh cong")
	} else {
		f.notifier.Success("Thanh cong", "Tao lich hen thanh cong")
	}
	f.Close()
	return nil
}

// missingFieldLocked returns the message for the first unfilled required
// field, or "" when the draft is complete.
func (f *Form) missingFieldLocked() string {
	switch {
	case f.draft.CustomerID == "":
		return "Vui long chon khach hang"
	case f.draft.VehicleID == "":
		return "Vui long chon xe"
	case f.draft.ServiceID == "":
		return "Vui long chon dich vu"
	case f.draft.ResourceID == "":
		return "Vui long chon tai nguyen"
	case f.draft.Start.IsZero():
		return "Vui long chon thoi gian bat dau"
	case f.draft.End.IsZero():
		return "Vui long chon thoi gian ket thuc"
	}
	return ""
}

// Close cancels pending checks and discards any in-flight results. A
// closed form rejects further submits.
func (f *Form) Close() {
	f.debounce.Stop()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateClosed
}

// Built-in sample lists used when a reference load fails.

func fallbackCustomers() []models.Customer {
	return []models.Customer{
		{ID: "1", Name: "Nguyen Van An"},
		{ID: "2", Name: "Tran Thi B"},
	}
}

func fallbackServices() []models.Service {
	return []models.Service{
		{ID: "11", Name: "Bao duong dinh ky", Duration: 60},
		{ID: "12", Name: "Thay pin", Duration: 90},
		{ID: "13", Name: "Kiem tra phanh", Duration: 45},
	}
}

func fallbackResources() []models.Resource {
	return []models.Resource{
		{ID: "101", Title: "KTV 1", Type: "technician"},
		{ID: "102", Title: "KTV 2", Type: "technician"},
	}
}

func fallbackVehicles() []models.Vehicle {
	return []models.Vehicle{
		{ID: "201", Plate: "29A-123.45", Model: "VinFast Feliz"},
		{ID: "202", Plate: "30F-678.90", Model: "Klara S"},
	}
}
