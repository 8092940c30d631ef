package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
	"travelgo/internal/repositories"
	"travelgo/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders the printable e-ticket of a paid booking.
type TicketService struct {
	Storage   *repositories.Storage
	RequestID string
	Loader    func(ctx context.Context, bookingID string) (ticketData, error)
}

type ticketData struct {
	Booking  models.Booking
	Schedule *models.Schedule
	Vehicle  *models.Vehicle
}

// Render returns the PDF and its filename. Only paid bookings get a ticket.
func (s TicketService) Render(ctx context.Context, bookingID string, actor domain.Actor) ([]byte, string, error) {
	d, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	if !actor.CanAccess(d.Booking.UserID) {
		return nil, "", domain.NotFoundError{Resource: "booking"}
	}
	if d.Booking.Status != models.StatusPaid {
		return nil, "", domain.ConflictError{Resource: "ticket", Msg: "tiket hanya tersedia untuk booking yang sudah lunas"}
	}
	utils.LogEvent(s.RequestID, "ticket", "render", "booking_id="+bookingID)
	return buildTicketPDF(d)
}

func (s TicketService) load(ctx context.Context, bookingID string) (ticketData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, bookingID)
	}
	var out ticketData
	if err := requireStorage(s.Storage); err != nil {
		return out, err
	}
	b, err := repositories.BookingRepository{Storage: s.Storage}.Get(ctx, bookingID)
	if err != nil {
		return out, err
	}
	out.Booking = b
	out.Schedule, err = repositories.ScheduleRepository{Storage: s.Storage}.Find(ctx, b.ScheduleID)
	if err != nil {
		return out, err
	}
	if out.Schedule != nil {
		out.Vehicle, err = repositories.VehicleRepository{Storage: s.Storage}.Find(ctx, out.Schedule.VehicleID)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

func buildTicketPDF(d ticketData) ([]byte, string, error) {
	b := d.Booking
	route, when, vehicle := "-", "-", "-"
	if d.Schedule != nil {
		route = fmt.Sprintf("%s -> %s", utils.Placeholder(d.Schedule.Origin), utils.Placeholder(d.Schedule.Destination))
		when = fmt.Sprintf("%s %s", utils.Placeholder(d.Schedule.Date), utils.Placeholder(d.Schedule.Time))
	}
	if d.Vehicle != nil {
		vehicle = fmt.Sprintf("%s - %s", utils.Placeholder(d.Vehicle.Type), utils.Placeholder(d.Vehicle.PlateNumber))
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket "+b.BookingCode, false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TravelGo - Tiket Elektronik")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, b.BookingCode)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Di keluarkan: "+utils.FormatDateTime(b.CreatedAt))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Nama Penumpang    : %s", utils.Placeholder(b.PassengerName)),
		fmt.Sprintf("Rute              : %s", route),
		fmt.Sprintf("Tanggal & Waktu   : %s", when),
		fmt.Sprintf("Kendaraan         : %s", vehicle),
		fmt.Sprintf("Jumlah Penumpang  : %d orang", b.NumberOfSeats),
		fmt.Sprintf("Total Pembayaran  : %s", utils.FormatRupiah(b.TotalPrice)),
		fmt.Sprintf("Status            : %s", b.Status.Label()),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, tr(l))
		pdf.Ln(7)
	}

	if proofType := proofImageType(b.PaymentProof); proofType != "" {
		raw, _, _ := utils.DecodeImageDataURL(b.PaymentProof)
		opts := gofpdf.ImageOptions{ImageType: proofType, ReadDpi: true}
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Bukti Pembayaran")
		pdf.Ln(8)
		pdf.RegisterImageOptionsReader("proof", opts, bytes.NewReader(raw))
		if pdf.Err() {
			// unsupported variant (e.g. interlaced PNG); keep the ticket
			pdf.ClearError()
			pdf.SetFont("Helvetica", "I", 10)
			pdf.Cell(0, 6, "(gambar tidak dapat ditampilkan)")
			pdf.Ln(6)
		} else {
			pdf.ImageOptions("proof", pdf.GetX(), pdf.GetY(), 80, 0, true, opts, 0, "")
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Harap tunjukkan tiket ini kepada petugas saat boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "gagal membuat tiket", Err: err}
	}
	return buf.Bytes(), fmt.Sprintf("TIKET_%s.pdf", safeFilenamePart(b.BookingCode)), nil
}

// proofImageType returns the gofpdf image type of a decodable proof, or "" when
// the proof is missing or not an image gofpdf can embed.
func proofImageType(proof string) string {
	if strings.TrimSpace(proof) == "" {
		return ""
	}
	raw, _, err := utils.DecodeImageDataURL(proof)
	if err != nil {
		return ""
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return ""
	}
	switch format {
	case "png":
		return "PNG"
	case "jpeg":
		return "JPG"
	case "gif":
		return "GIF"
	}
	return ""
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
