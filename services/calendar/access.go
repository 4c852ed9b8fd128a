package calendar

import "slotify/models"

// Operation is what the requester wants to do with a calendar.
type Operation string

const (
	OpRead        Operation = "read"
	OpReadDetails Operation = "readDetails"
	OpBook        Operation = "book"
)

// ResolveAccess decides whether the requesting tenant may perform op on the
// calendar. grant is the tenant's active grant, or nil when none exists;
// callers fetch it at most once per request. The function is pure.
//
// Rules, in order: public calendars are readable by anyone, tenant or not;
// private calendars require a tenant identity and an active grant; booking
// additionally requires the grant's canBook flag. A showDetails violation is
// not an access failure — callers redact instead (see GetCalendarEvents).
func ResolveAccess(cal *models.Calendar, grant *models.TenantCalendar, tenantID string, op Operation) error {
	if cal.IsPublic && (op == OpRead || op == OpReadDetails) {
		return nil
	}

	if !cal.IsPublic && tenantID == "" {
		return newForbidden("Calendar not accessible")
	}

	if grant == nil || !grant.IsActive {
		return newForbidden("Tenant not authorized")
	}

	if op == OpBook && !grant.CanBook {
		return newBookingNotAllowed("Booking not allowed")
	}

	return nil
}
