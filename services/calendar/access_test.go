package calendar

import (
	"errors"
	"testing"

	"slotify/models"
)

func TestResolveAccess(t *testing.T) {
	activeGrant := &models.TenantCalendar{IsActive: true}
	bookingGrant := &models.TenantCalendar{IsActive: true, CanBook: true}
	inactiveGrant := &models.TenantCalendar{IsActive: false, CanBook: true}

	tests := []struct {
		name     string
		isPublic bool
		grant    *models.TenantCalendar
		tenantID string
		op       Operation
		wantKind ErrorKind
		wantMsg  string
	}{
		{
			name:     "public calendar readable without tenant",
			isPublic: true,
			op:       OpRead,
		},
		{
			name:     "public calendar readable by unknown tenant",
			isPublic: true,
			tenantID: "t1",
			op:       OpReadDetails,
		},
		{
			name:     "private calendar rejects anonymous requests",
			op:       OpRead,
			wantKind: KindForbidden,
			wantMsg:  "Calendar not accessible",
		},
		{
			name:     "private calendar rejects tenant without grant",
			tenantID: "t1",
			op:       OpRead,
			wantKind: KindForbidden,
			wantMsg:  "Tenant not authorized",
		},
		{
			name:     "inactive grant treated as absent",
			tenantID: "t1",
			grant:    inactiveGrant,
			op:       OpRead,
			wantKind: KindForbidden,
			wantMsg:  "Tenant not authorized",
		},
		{
			name:     "active grant may read private calendar",
			tenantID: "t1",
			grant:    activeGrant,
			op:       OpRead,
		},
		{
			name:     "booking requires canBook",
			tenantID: "t1",
			grant:    activeGrant,
			op:       OpBook,
			wantKind: KindBookingNotAllowed,
			wantMsg:  "Booking not allowed",
		},
		{
			name:     "booking allowed with canBook",
			tenantID: "t1",
			grant:    bookingGrant,
			op:       OpBook,
		},
		{
			name:     "public calendar still requires a grant to book",
			isPublic: true,
			tenantID: "t1",
			op:       OpBook,
			wantKind: KindForbidden,
			wantMsg:  "Tenant not authorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := &models.Calendar{ID: "c1", IsPublic: tt.isPublic}
			err := ResolveAccess(cal, tt.grant, tt.tenantID, tt.op)

			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected %s error, got nil", tt.wantKind)
			}
			if got := KindOf(err); got != tt.wantKind {
				t.Errorf("kind = %s, want %s", got, tt.wantKind)
			}
			var svcErr *Error
			if !errors.As(err, &svcErr) {
				t.Fatalf("error is not a service error: %v", err)
			}
			if svcErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", svcErr.Message, tt.wantMsg)
			}
		})
	}
}
