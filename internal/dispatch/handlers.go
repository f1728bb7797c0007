package dispatch

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sehatsahara/sahara/internal/gateway"
)

var appFeatures = []string{
	"📅 Book doctor appointments",
	"💊 Find nearby pharmacies",
	"📷 Scan medicine labels",
	"📋 View prescriptions",
	"📊 Check health records",
	"🚨 Emergency assistance (108)",
}

// registerHandlers builds the three dispatch tables. The top-level table ignores unknown
// actions; the generic table echoes them back as a notification. They stay separate.
func (d *Dispatcher) registerHandlers() {
	d.buttons = map[ButtonType]handlerFunc{
		ButtonAppointmentBooking: d.navigateToAppointmentBooking,
		ButtonMedicineScan:       d.startMedicineScanner,
		ButtonPrescriptionView:   d.showPrescription,
		ButtonEmergencyCall:      d.triggerEmergency,
	}

	redirect := d.notify("Redirecting to appointment booking...", KindInfo)
	d.topLevel = map[Action]handlerFunc{
		ActionNavigateToAppointmentBooking: redirect,
		ActionMapsToAppointmentBooking:     redirect,
		ActionTriggerSOS:                   d.notify("Emergency services activated!", KindError),
		ActionContinueSymptomCheck:         d.notify("Continue with symptom checking", KindInfo),
		ActionShowAppFeatures:              d.showAppFeatures,
	}

	d.generic = map[Action]handlerFunc{
		ActionFetchAppointments:       d.fetchAppointments,
		ActionFetchHealthRecord:       d.fetchHealthRecords,
		ActionShowPrescriptionSummary: d.showPrescription,
	}
}

func (d *Dispatcher) notify(message string, kind Kind) handlerFunc {
	return func(context.Context, Parameters) {
		d.notifier.Show(message, kind)
	}
}

func (d *Dispatcher) handleAction(ctx context.Context, action Action, params Parameters) {
	h, ok := d.topLevel[action]
	d.metrics.ObserveAction("top_level", string(action), ok)
	if !ok {
		d.logger.Debug("dispatch: ignoring unknown top-level action", zap.String("action", string(action)))
		return
	}
	h(ctx, params)
}

func (d *Dispatcher) handleGenericAction(ctx context.Context, action Action, params Parameters) {
	h, ok := d.generic[action]
	d.metrics.ObserveAction("generic", string(action), ok)
	if !ok {
		d.notifier.Show(fmt.Sprintf("Action: %s", action), KindInfo)
		return
	}
	h(ctx, params)
}

// --- button handlers ---

func (d *Dispatcher) navigateToAppointmentBooking(ctx context.Context, params Parameters) {
	d.notifier.Show("Opening appointment booking...", KindInfo)

	req := gateway.BookingRequest{
		UserID:              d.users.CurrentUserID(),
		DoctorID:            params.ValueOr("doctorId", ""),
		AppointmentDatetime: params.String("preferredDate"),
		AppointmentType:     gateway.AppointmentTypeConsultation,
		ChiefComplaint:      params.String("reason"),
	}
	callCtx := context.WithoutCancel(ctx)
	d.async(func() {
		res := d.gateway.Call(callCtx, gateway.EndpointBookDoctor, req)
		if res.Err != nil {
			d.logger.Warn("dispatch: booking request failed", zap.String("user_id", req.UserID), zap.Error(res.Err))
			return
		}
		d.logger.Info("dispatch: booking request sent",
			zap.String("user_id", req.UserID),
			zap.Bool("success", res.Success()))
	})
}

func (d *Dispatcher) startMedicineScanner(ctx context.Context, _ Parameters) {
	if d.device == nil || !d.device.CameraAvailable() {
		d.notifier.Show("Camera not available on this device", KindError)
		return
	}

	permCtx := context.WithoutCancel(ctx)
	d.async(func() {
		if err := d.device.RequestCameraPermission(permCtx); err != nil {
			d.logger.Debug("dispatch: camera permission denied", zap.Error(err))
			d.notifier.Show("Camera access denied. Please enable camera permissions.", KindError)
			return
		}
		d.notifier.Show("Camera access granted. Starting medicine scanner...", KindSuccess)
	})
}

// showPrescription fetches the summary and renders it on success. A failed call shows
// nothing to the user.
func (d *Dispatcher) showPrescription(ctx context.Context, params Parameters) {
	req := gateway.PrescriptionSummaryRequest{
		UserID:         d.users.CurrentUserID(),
		PrescriptionID: params.Value("prescriptionId"),
	}
	callCtx := context.WithoutCancel(ctx)
	d.async(func() {
		res := d.gateway.Call(callCtx, gateway.EndpointPrescriptionSummary, req)
		if !res.Success() {
			d.logger.Debug("dispatch: prescription summary unavailable", zap.String("user_id", req.UserID))
			return
		}
		d.displayPrescriptionSummary(res.Object("prescription_summary"))
	})
}

func (d *Dispatcher) triggerEmergency(_ context.Context, params Parameters) {
	number := params.StringOr("emergency_number", d.emergencyNumber)
	d.logger.Warn("dispatch: emergency triggered", zap.String("number", number))

	d.surface.ShowEmergencyModal(number)

	if d.device != nil && d.device.IsMobile() {
		d.clock.AfterFunc(d.timing.EmergencyDial, func() {
			d.device.Dial(number)
		})
	}
}

// --- generic action handlers ---

func (d *Dispatcher) fetchAppointments(ctx context.Context, _ Parameters) {
	req := gateway.AppointmentsRequest{UserID: d.users.CurrentUserID()}
	callCtx := context.WithoutCancel(ctx)
	d.async(func() {
		res := d.gateway.Call(callCtx, gateway.EndpointAppointments, req)
		if !res.Success() {
			return
		}
		d.surface.ShowPanel(Panel{Kind: PanelAppointments, Data: res.Body})
		d.notifier.Show("Appointments loaded", KindSuccess)
	})
}

func (d *Dispatcher) fetchHealthRecords(ctx context.Context, params Parameters) {
	req := gateway.HealthRecordsRequest{
		UserID:     d.users.CurrentUserID(),
		RecordType: params.String("recordType"),
	}
	callCtx := context.WithoutCancel(ctx)
	d.async(func() {
		res := d.gateway.Call(callCtx, gateway.EndpointHealthRecords, req)
		if !res.Success() {
			return
		}
		d.surface.ShowPanel(Panel{Kind: PanelHealthRecords, Data: res.Body})
		d.notifier.Show("Health records loaded", KindSuccess)
	})
}

// --- top-level action handlers ---

func (d *Dispatcher) showAppFeatures(context.Context, Parameters) {
	d.notifier.Show("Sehat Sahara Features:\n"+strings.Join(appFeatures, "\n"), KindInfo)
}

func (d *Dispatcher) displayPrescriptionSummary(summary map[string]any) {
	d.surface.ShowPanel(Panel{Kind: PanelPrescriptionSummary, Data: summary})
	if d.formatPrescription != nil {
		if text := d.formatPrescription(summary, d.currentLanguage()); text != "" {
			d.surface.AppendMessage(SenderBot, text)
		}
	}
	d.notifier.Show("Prescription summary loaded", KindSuccess)
}
