package store

import (
	"time"

	"github.com/evserve/workshop-backend/internal/models"
)

// Seed data for demo sessions. Mirrors a small but realistic workshop day:
// three work orders in different stages plus their activity feed, and the
// lookup lists the booking form needs.

func SeedWorkOrders() []models.WorkOrder {
	return []models.WorkOrder{
		{
			ID: "WO-2401",
			Vehicle: models.VehicleInfo{
				Make:  "Tesla",
				Model: "Model 3 Performance",
				VIN:   "5YJ3E1EA7JF000000",
				Plate: "51H-123.45",
				Year:  2024,
			},
			Customer: models.CustomerInfo{
				Name:  "Nguyen Van A",
				Phone: "+84 912 345 678",
				Email: "nva@example.com",
			},
			Priority:   models.PriorityHigh,
			Status:     "In Progress",
			Progress:   68,
			ETA:        time.Date(2025, 10, 22, 16, 0, 0, 0, time.UTC),
			ServiceBay: "EV-Bay-03",
			Technician: models.Technician{
				Name:   "Tran Minh Quan",
				Avatar: "https://i.pravatar.cc/100?img=12",
				Shift:  "08:00 - 17:00",
			},
			Tasks: []models.Task{
				{ID: "task-1", Label: "Diagnostics and log extraction", Status: models.TaskDone, Owner: "Quan"},
				{ID: "task-2", Label: "Battery thermal calibration", Status: models.TaskInProgress, Owner: "Quan"},
				{ID: "task-3", Label: "Inverter firmware update", Status: models.TaskPending, Owner: "Quan"},
				{ID: "task-4", Label: "Road test and telemetry", Status: models.TaskPending, Owner: "Tester"},
			},
			Parts: []models.Part{
				{ID: "part-1", Name: "Battery coolant EV-LR", Quantity: 2, Status: models.PartAvailable},
				{ID: "part-2", Name: "HV isolator kit", Quantity: 1, Status: models.PartAwaiting},
				{ID: "part-3", Name: "Torque seal", Quantity: 3, Status: models.PartAvailable},
			},
			Checklist: []models.ChecklistItem{
				{ID: "chk-1", Item: "Lock-out tag applied", Completed: true},
				{ID: "chk-2", Item: "High-voltage isolation", Completed: true},
				{ID: "chk-3", Item: "Thermal camera scan", Completed: false},
			},
			Notes:       "Khach yeu cau giao xe truoc 16:00 de tham du su kien toi.",
			LastUpdated: time.Date(2025, 10, 21, 9, 35, 0, 0, time.UTC),
		},
		{
			ID: "WO-2402",
			Vehicle: models.VehicleInfo{
				Make:  "VinFast",
				Model: "VF8 Plus",
				VIN:   "VRHFF6S90PD000001",
				Plate: "61G-678.90",
				Year:  2023,
			},
			Customer: models.CustomerInfo{
				Name:  "Pham Thi B",
				Phone: "+84 938 222 111",
				Email: "ptb@example.com",
			},
			Priority:   models.PriorityMedium,
			Status:     "Scheduled",
			Progress:   25,
			ETA:        time.Date(2025, 10, 23, 10, 30, 0, 0, time.UTC),
			ServiceBay: "EV-Bay-01",
			Technician: models.Technician{
				Name:   "Le Hoang",
				Avatar: "https://i.pravatar.cc/100?img=33",
				Shift:  "12:00 - 21:00",
			},
			Tasks: []models.Task{
				{ID: "task-1", Label: "Chassis inspection", Status: models.TaskDone, Owner: "Lan"},
				{ID: "task-2", Label: "Suspension torque check", Status: models.TaskPending, Owner: "Hoang"},
				{ID: "task-3", Label: "HV battery health test", Status: models.TaskPending, Owner: "Hoang"},
			},
			Parts: []models.Part{
				{ID: "part-1", Name: "Brake fluid DOT4", Quantity: 1, Status: models.PartAvailable},
				{ID: "part-2", Name: "Front stabilizer link", Quantity: 2, Status: models.PartReserved},
			},
			Checklist: []models.ChecklistItem{
				{ID: "chk-1", Item: "Parking brake calibration", Completed: false},
				{ID: "chk-2", Item: "TCU software update", Completed: false},
			},
			Notes:       "Khach muon them kiem tra tieng on cabin.",
			LastUpdated: time.Date(2025, 10, 20, 18, 12, 0, 0, time.UTC),
		},
		{
			ID: "WO-2403",
			Vehicle: models.VehicleInfo{
				Make:  "BYD",
				Model: "Seal AWD",
				VIN:   "LGXCE2CA4P2000002",
				Plate: "63K-456.12",
				Year:  2024,
			},
			Customer: models.CustomerInfo{
				Name:  "Dang Van C",
				Phone: "+84 901 555 333",
				Email: "dvc@example.com",
			},
			Priority:   models.PriorityLow,
			Status:     "Completed",
			Progress:   100,
			ETA:        time.Date(2025, 10, 19, 15, 0, 0, 0, time.UTC),
			ServiceBay: "EV-Bay-05",
			Technician: models.Technician{
				Name:   "Bui Huu Tai",
				Avatar: "https://i.pravatar.cc/100?img=18",
				Shift:  "08:00 - 17:00",
			},
			Tasks: []models.Task{
				{ID: "task-1", Label: "HV battery conditioning", Status: models.TaskDone, Owner: "Tai"},
				{ID: "task-2", Label: "Thermal management flush", Status: models.TaskDone, Owner: "Tai"},
				{ID: "task-3", Label: "Autopilot calibration", Status: models.TaskDone, Owner: "Tai"},
			},
			Parts: []models.Part{
				{ID: "part-1", Name: "Coolant hose set", Quantity: 1, Status: models.PartConsumed},
				{ID: "part-2", Name: "Cabin filter HEPA", Quantity: 1, Status: models.PartConsumed},
			},
			Checklist: []models.ChecklistItem{
				{ID: "chk-1", Item: "Maintenance log updated", Completed: true},
				{ID: "chk-2", Item: "Final safety check", Completed: true},
			},
			Notes:       "Khach danh gia 5 sao, de nghi noi soi khoang pin moi 6 thang.",
			LastUpdated: time.Date(2025, 10, 19, 15, 30, 0, 0, time.UTC),
		},
	}
}

func SeedTimeline() []models.TimelineEntry {
	return []models.TimelineEntry{
		{
			ID:          "tl-1",
			WorkOrderID: "WO-2401",
			Type:        models.TimelineUpdate,
			Title:       "Da hoan tat chan doan",
			Description: "Trich xuat log hieu nang, phat hien cell pin so 12 vuot nguong 8 do C.",
			Timestamp:   time.Date(2025, 10, 21, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:          "tl-2",
			WorkOrderID: "WO-2401",
			Type:        models.TimelineAlert,
			Title:       "Thieu phu tung",
			Description: "HV isolator kit chua nhap kho. Da gui yeu cau xu ly gap cho bo phan kho.",
			Timestamp:   time.Date(2025, 10, 21, 9, 25, 0, 0, time.UTC),
		},
		{
			ID:          "tl-3",
			WorkOrderID: "WO-2402",
			Type:        models.TimelineCommunication,
			Title:       "Lien he khach hang",
			Description: "Da thong bao ve ke hoach cac lop cach am moi de giam tieng on cabin.",
			Timestamp:   time.Date(2025, 10, 20, 18, 45, 0, 0, time.UTC),
		},
		{
			ID:          "tl-4",
			WorkOrderID: "WO-2403",
			Type:        models.TimelineCompletion,
			Title:       "Ban giao xe",
			Description: "Lai thu dat chuan, khach hang ky xac nhan hoan tat dich vu.",
			Timestamp:   time.Date(2025, 10, 19, 15, 10, 0, 0, time.UTC),
		},
	}
}

func SeedCustomers() []models.Customer {
	return []models.Customer{
		{ID: "1", Name: "Nguyen Van An", Phone: "+84 912 345 678", Email: "nva@example.com"},
		{ID: "2", Name: "Tran Thi B", Phone: "+84 938 222 111", Email: "ttb@example.com"},
	}
}

func SeedServices() []models.Service {
	return []models.Service{
		{ID: "11", Name: "Bao duong dinh ky", Duration: 60},
		{ID: "12", Name: "Thay pin", Duration: 90},
		{ID: "13", Name: "Kiem tra phanh", Duration: 45},
	}
}

func SeedResources() []models.Resource {
	return []models.Resource{
		{ID: "101", Title: "KTV 1", Type: "technician"},
		{ID: "102", Title: "KTV 2", Type: "technician"},
		{ID: "201", Title: "EV-Bay-01", Type: "bay"},
		{ID: "202", Title: "EV-Bay-03", Type: "bay"},
	}
}

func SeedVehicles() []models.Vehicle {
	return []models.Vehicle{
		{ID: "201", CustomerID: "1", Plate: "29A-123.45", Model: "VinFast Feliz"},
		{ID: "202", CustomerID: "1", Plate: "30F-678.90", Model: "Klara S"},
		{ID: "203", CustomerID: "2", Plate: "51H-123.45", Model: "Tesla Model 3"},
	}
}
