package domain

import (
	"testing"
	"time"
)

var genNow = time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

func TestGenerateTasks_BookedNextFlightOut(t *testing.T) {
	tasks := GenerateTasks("ship-1", StatusBooked, ServiceNextFlightOut, genNow)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "Book next available flight" {
		t.Errorf("unexpected first task: %q", tasks[0].Title)
	}
	if tasks[0].DueDate == nil || !tasks[0].DueDate.Equal(genNow.Add(2*time.Hour)) {
		t.Errorf("expected due +120m, got %v", tasks[0].DueDate)
	}
}

func TestGenerateTasks_BookedOnBoardCourierDiffers(t *testing.T) {
	tasks := GenerateTasks("ship-1", StatusBooked, ServiceOnBoardCourier, genNow)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Title == "Book next available flight" {
			t.Error("on-board-courier bookings must not get flight-booking tasks")
		}
	}
}

func TestGenerateTasks_CommonFields(t *testing.T) {
	tasks := GenerateTasks("ship-9", StatusCustoms, ServiceOnBoardCourier, genNow)
	if len(tasks) == 0 {
		t.Fatal("expected tasks for customs")
	}
	for _, task := range tasks {
		if task.ID == "" {
			t.Error("task must have an id")
		}
		if task.ShipmentID != "ship-9" {
			t.Errorf("wrong shipment id: %q", task.ShipmentID)
		}
		if task.Origin != TaskOriginAutomatic {
			t.Errorf("origin must be automatic, got %q", task.Origin)
		}
		if task.Status != TaskStatusPending {
			t.Errorf("status must be pending, got %q", task.Status)
		}
		if !task.CreatedAt.Equal(genNow) {
			t.Errorf("created_at must be the transition timestamp, got %v", task.CreatedAt)
		}
	}
}

func TestGenerateTasks_NoOffsetMeansNoDueDate(t *testing.T) {
	tasks := GenerateTasks("ship-2", StatusDocument, ServiceNextFlightOut, genNow)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}

	var compile, invoice *Task
	for i := range tasks {
		switch tasks[i].Title {
		case "Compile shipment document pack":
			compile = &tasks[i]
		case "Issue invoice":
			invoice = &tasks[i]
		}
	}
	if compile == nil || invoice == nil {
		t.Fatalf("missing expected document tasks: %+v", tasks)
	}
	if compile.DueDate != nil {
		t.Error("template without offset must produce no due date")
	}
	if invoice.DueDate == nil || !invoice.DueDate.Equal(genNow.Add(48*time.Hour)) {
		t.Errorf("invoice task due wrong: %v", invoice.DueDate)
	}
}

func TestGenerateTasks_TerminalStatusesProduceNone(t *testing.T) {
	for _, status := range []ShipmentStatus{StatusInvoiced, StatusCancelled} {
		for _, st := range []ServiceType{ServiceOnBoardCourier, ServiceNextFlightOut} {
			if tasks := GenerateTasks("ship-3", status, st, genNow); len(tasks) != 0 {
				t.Errorf("%s/%s: expected no tasks, got %d", status, st, len(tasks))
			}
		}
	}
}

func TestFormatShipmentNumber(t *testing.T) {
	if got := FormatShipmentNumber(ServiceOnBoardCourier, 42); got != "OBC-00042" {
		t.Errorf("got %q", got)
	}
	if got := FormatShipmentNumber(ServiceNextFlightOut, 7); got != "NFO-00007" {
		t.Errorf("got %q", got)
	}
}
