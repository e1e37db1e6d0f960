// Code generated by ent, DO NOT EDIT.

package meeting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldID, id))
}

// Banana applies equality check predicate on the "banana" field. It's identical to BananaEQ.
func Banana(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldBanana, v))
}

// VendorID applies equality check predicate on the "vendor_id" field. It's identical to VendorIDEQ.
func VendorID(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldVendorID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTitle, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldDate, v))
}

// AgendaURL applies equality check predicate on the "agenda_url" field. It's identical to AgendaURLEQ.
func AgendaURL(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldAgendaURL, v))
}

// PacketURL applies equality check predicate on the "packet_url" field. It's identical to PacketURLEQ.
func PacketURL(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldPacketURL, v))
}

// CommitteeID applies equality check predicate on the "committee_id" field. It's identical to CommitteeIDEQ.
func CommitteeID(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCommitteeID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldSummary, v))
}

// ProcessingMethod applies equality check predicate on the "processing_method" field. It's identical to ProcessingMethodEQ.
func ProcessingMethod(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldProcessingMethod, v))
}

// ProcessingTimeMs applies equality check predicate on the "processing_time_ms" field. It's identical to ProcessingTimeMsEQ.
func ProcessingTimeMs(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// AttachmentFingerprint applies equality check predicate on the "attachment_fingerprint" field. It's identical to AttachmentFingerprintEQ.
func AttachmentFingerprint(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldAttachmentFingerprint, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldUpdatedAt, v))
}

// BananaEQ applies the EQ predicate on the "banana" field.
func BananaEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldBanana, v))
}

// BananaNEQ applies the NEQ predicate on the "banana" field.
func BananaNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldBanana, v))
}

// BananaIn applies the In predicate on the "banana" field.
func BananaIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldBanana, vs...))
}

// BananaNotIn applies the NotIn predicate on the "banana" field.
func BananaNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldBanana, vs...))
}

// BananaGT applies the GT predicate on the "banana" field.
func BananaGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldBanana, v))
}

// BananaGTE applies the GTE predicate on the "banana" field.
func BananaGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldBanana, v))
}

// BananaLT applies the LT predicate on the "banana" field.
func BananaLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldBanana, v))
}

// BananaLTE applies the LTE predicate on the "banana" field.
func BananaLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldBanana, v))
}

// BananaContains applies the Contains predicate on the "banana" field.
func BananaContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldBanana, v))
}

// BananaHasPrefix applies the HasPrefix predicate on the "banana" field.
func BananaHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldBanana, v))
}

// BananaHasSuffix applies the HasSuffix predicate on the "banana" field.
func BananaHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldBanana, v))
}

// BananaEqualFold applies the EqualFold predicate on the "banana" field.
func BananaEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldBanana, v))
}

// BananaContainsFold applies the ContainsFold predicate on the "banana" field.
func BananaContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldBanana, v))
}

// VendorIDEQ applies the EQ predicate on the "vendor_id" field.
func VendorIDEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldVendorID, v))
}

// VendorIDNEQ applies the NEQ predicate on the "vendor_id" field.
func VendorIDNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldVendorID, v))
}

// VendorIDIn applies the In predicate on the "vendor_id" field.
func VendorIDIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldVendorID, vs...))
}

// VendorIDNotIn applies the NotIn predicate on the "vendor_id" field.
func VendorIDNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldVendorID, vs...))
}

// VendorIDGT applies the GT predicate on the "vendor_id" field.
func VendorIDGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldVendorID, v))
}

// VendorIDGTE applies the GTE predicate on the "vendor_id" field.
func VendorIDGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldVendorID, v))
}

// VendorIDLT applies the LT predicate on the "vendor_id" field.
func VendorIDLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldVendorID, v))
}

// VendorIDLTE applies the LTE predicate on the "vendor_id" field.
func VendorIDLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldVendorID, v))
}

// VendorIDContains applies the Contains predicate on the "vendor_id" field.
func VendorIDContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldVendorID, v))
}

// VendorIDHasPrefix applies the HasPrefix predicate on the "vendor_id" field.
func VendorIDHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldVendorID, v))
}

// VendorIDHasSuffix applies the HasSuffix predicate on the "vendor_id" field.
func VendorIDHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldVendorID, v))
}

// VendorIDEqualFold applies the EqualFold predicate on the "vendor_id" field.
func VendorIDEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldVendorID, v))
}

// VendorIDContainsFold applies the ContainsFold predicate on the "vendor_id" field.
func VendorIDContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldVendorID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldTitle, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldDate, v))
}

// DateIsNil applies the IsNil predicate on the "date" field.
func DateIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldDate))
}

// DateNotNil applies the NotNil predicate on the "date" field.
func DateNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldDate))
}

// AgendaURLEQ applies the EQ predicate on the "agenda_url" field.
func AgendaURLEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldAgendaURL, v))
}

// AgendaURLNEQ applies the NEQ predicate on the "agenda_url" field.
func AgendaURLNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldAgendaURL, v))
}

// AgendaURLIn applies the In predicate on the "agenda_url" field.
func AgendaURLIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldAgendaURL, vs...))
}

// AgendaURLNotIn applies the NotIn predicate on the "agenda_url" field.
func AgendaURLNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldAgendaURL, vs...))
}

// AgendaURLGT applies the GT predicate on the "agenda_url" field.
func AgendaURLGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldAgendaURL, v))
}

// AgendaURLGTE applies the GTE predicate on the "agenda_url" field.
func AgendaURLGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldAgendaURL, v))
}

// AgendaURLLT applies the LT predicate on the "agenda_url" field.
func AgendaURLLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldAgendaURL, v))
}

// AgendaURLLTE applies the LTE predicate on the "agenda_url" field.
func AgendaURLLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldAgendaURL, v))
}

// AgendaURLContains applies the Contains predicate on the "agenda_url" field.
func AgendaURLContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldAgendaURL, v))
}

// AgendaURLHasPrefix applies the HasPrefix predicate on the "agenda_url" field.
func AgendaURLHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldAgendaURL, v))
}

// AgendaURLHasSuffix applies the HasSuffix predicate on the "agenda_url" field.
func AgendaURLHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldAgendaURL, v))
}

// AgendaURLIsNil applies the IsNil predicate on the "agenda_url" field.
func AgendaURLIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldAgendaURL))
}

// AgendaURLNotNil applies the NotNil predicate on the "agenda_url" field.
func AgendaURLNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldAgendaURL))
}

// AgendaURLEqualFold applies the EqualFold predicate on the "agenda_url" field.
func AgendaURLEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldAgendaURL, v))
}

// AgendaURLContainsFold applies the ContainsFold predicate on the "agenda_url" field.
func AgendaURLContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldAgendaURL, v))
}

// PacketURLEQ applies the EQ predicate on the "packet_url" field.
func PacketURLEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldPacketURL, v))
}

// PacketURLNEQ applies the NEQ predicate on the "packet_url" field.
func PacketURLNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldPacketURL, v))
}

// PacketURLIn applies the In predicate on the "packet_url" field.
func PacketURLIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldPacketURL, vs...))
}

// PacketURLNotIn applies the NotIn predicate on the "packet_url" field.
func PacketURLNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldPacketURL, vs...))
}

// PacketURLGT applies the GT predicate on the "packet_url" field.
func PacketURLGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldPacketURL, v))
}

// PacketURLGTE applies the GTE predicate on the "packet_url" field.
func PacketURLGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldPacketURL, v))
}

// PacketURLLT applies the LT predicate on the "packet_url" field.
func PacketURLLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldPacketURL, v))
}

// PacketURLLTE applies the LTE predicate on the "packet_url" field.
func PacketURLLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldPacketURL, v))
}

// PacketURLContains applies the Contains predicate on the "packet_url" field.
func PacketURLContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldPacketURL, v))
}

// PacketURLHasPrefix applies the HasPrefix predicate on the "packet_url" field.
func PacketURLHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldPacketURL, v))
}

// PacketURLHasSuffix applies the HasSuffix predicate on the "packet_url" field.
func PacketURLHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldPacketURL, v))
}

// PacketURLIsNil applies the IsNil predicate on the "packet_url" field.
func PacketURLIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldPacketURL))
}

// PacketURLNotNil applies the NotNil predicate on the "packet_url" field.
func PacketURLNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldPacketURL))
}

// PacketURLEqualFold applies the EqualFold predicate on the "packet_url" field.
func PacketURLEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldPacketURL, v))
}

// PacketURLContainsFold applies the ContainsFold predicate on the "packet_url" field.
func PacketURLContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldPacketURL, v))
}

// CommitteeIDEQ applies the EQ predicate on the "committee_id" field.
func CommitteeIDEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCommitteeID, v))
}

// CommitteeIDNEQ applies the NEQ predicate on the "committee_id" field.
func CommitteeIDNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldCommitteeID, v))
}

// CommitteeIDIn applies the In predicate on the "committee_id" field.
func CommitteeIDIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldCommitteeID, vs...))
}

// CommitteeIDNotIn applies the NotIn predicate on the "committee_id" field.
func CommitteeIDNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldCommitteeID, vs...))
}

// CommitteeIDGT applies the GT predicate on the "committee_id" field.
func CommitteeIDGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldCommitteeID, v))
}

// CommitteeIDGTE applies the GTE predicate on the "committee_id" field.
func CommitteeIDGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldCommitteeID, v))
}

// CommitteeIDLT applies the LT predicate on the "committee_id" field.
func CommitteeIDLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldCommitteeID, v))
}

// CommitteeIDLTE applies the LTE predicate on the "committee_id" field.
func CommitteeIDLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldCommitteeID, v))
}

// CommitteeIDContains applies the Contains predicate on the "committee_id" field.
func CommitteeIDContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldCommitteeID, v))
}

// CommitteeIDHasPrefix applies the HasPrefix predicate on the "committee_id" field.
func CommitteeIDHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldCommitteeID, v))
}

// CommitteeIDHasSuffix applies the HasSuffix predicate on the "committee_id" field.
func CommitteeIDHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldCommitteeID, v))
}

// CommitteeIDIsNil applies the IsNil predicate on the "committee_id" field.
func CommitteeIDIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldCommitteeID))
}

// CommitteeIDNotNil applies the NotNil predicate on the "committee_id" field.
func CommitteeIDNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldCommitteeID))
}

// CommitteeIDEqualFold applies the EqualFold predicate on the "committee_id" field.
func CommitteeIDEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldCommitteeID, v))
}

// CommitteeIDContainsFold applies the ContainsFold predicate on the "committee_id" field.
func CommitteeIDContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldCommitteeID, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldSummary, v))
}

// ParticipationIsNil applies the IsNil predicate on the "participation" field.
func ParticipationIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldParticipation))
}

// ParticipationNotNil applies the NotNil predicate on the "participation" field.
func ParticipationNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldParticipation))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldStatus))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v ProcessingStatus) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v ProcessingStatus) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...ProcessingStatus) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...ProcessingStatus) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// ProcessingMethodEQ applies the EQ predicate on the "processing_method" field.
func ProcessingMethodEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldProcessingMethod, v))
}

// ProcessingMethodNEQ applies the NEQ predicate on the "processing_method" field.
func ProcessingMethodNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldProcessingMethod, v))
}

// ProcessingMethodIn applies the In predicate on the "processing_method" field.
func ProcessingMethodIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldProcessingMethod, vs...))
}

// ProcessingMethodNotIn applies the NotIn predicate on the "processing_method" field.
func ProcessingMethodNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldProcessingMethod, vs...))
}

// ProcessingMethodGT applies the GT predicate on the "processing_method" field.
func ProcessingMethodGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldProcessingMethod, v))
}

// ProcessingMethodGTE applies the GTE predicate on the "processing_method" field.
func ProcessingMethodGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldProcessingMethod, v))
}

// ProcessingMethodLT applies the LT predicate on the "processing_method" field.
func ProcessingMethodLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldProcessingMethod, v))
}

// ProcessingMethodLTE applies the LTE predicate on the "processing_method" field.
func ProcessingMethodLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldProcessingMethod, v))
}

// ProcessingMethodContains applies the Contains predicate on the "processing_method" field.
func ProcessingMethodContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldProcessingMethod, v))
}

// ProcessingMethodHasPrefix applies the HasPrefix predicate on the "processing_method" field.
func ProcessingMethodHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldProcessingMethod, v))
}

// ProcessingMethodHasSuffix applies the HasSuffix predicate on the "processing_method" field.
func ProcessingMethodHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldProcessingMethod, v))
}

// ProcessingMethodIsNil applies the IsNil predicate on the "processing_method" field.
func ProcessingMethodIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldProcessingMethod))
}

// ProcessingMethodNotNil applies the NotNil predicate on the "processing_method" field.
func ProcessingMethodNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldProcessingMethod))
}

// ProcessingMethodEqualFold applies the EqualFold predicate on the "processing_method" field.
func ProcessingMethodEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldProcessingMethod, v))
}

// ProcessingMethodContainsFold applies the ContainsFold predicate on the "processing_method" field.
func ProcessingMethodContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldProcessingMethod, v))
}

// ProcessingTimeMsEQ applies the EQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsEQ(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsNEQ applies the NEQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsNEQ(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIn applies the In predicate on the "processing_time_ms" field.
func ProcessingTimeMsIn(vs ...int) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsNotIn applies the NotIn predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotIn(vs ...int) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsGT applies the GT predicate on the "processing_time_ms" field.
func ProcessingTimeMsGT(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsGTE applies the GTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsGTE(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLT applies the LT predicate on the "processing_time_ms" field.
func ProcessingTimeMsLT(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLTE applies the LTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsLTE(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIsNil applies the IsNil predicate on the "processing_time_ms" field.
func ProcessingTimeMsIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldProcessingTimeMs))
}

// ProcessingTimeMsNotNil applies the NotNil predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldProcessingTimeMs))
}

// TopicsIsNil applies the IsNil predicate on the "topics" field.
func TopicsIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldTopics))
}

// TopicsNotNil applies the NotNil predicate on the "topics" field.
func TopicsNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldTopics))
}

// AttachmentFingerprintEQ applies the EQ predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldAttachmentFingerprint, v))
}

// AttachmentFingerprintNEQ applies the NEQ predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldAttachmentFingerprint, v))
}

// AttachmentFingerprintIn applies the In predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldAttachmentFingerprint, vs...))
}

// AttachmentFingerprintNotIn applies the NotIn predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldAttachmentFingerprint, vs...))
}

// AttachmentFingerprintGT applies the GT predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldAttachmentFingerprint, v))
}

// AttachmentFingerprintGTE applies the GTE predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldAttachmentFingerprint, v))
}

// AttachmentFingerprintLT applies the LT predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldAttachmentFingerprint, v))
}

// AttachmentFingerprintLTE applies the LTE predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldAttachmentFingerprint, v))
}

// AttachmentFingerprintContains applies the Contains predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldAttachmentFingerprint, v))
}

// AttachmentFingerprintHasPrefix applies the HasPrefix predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldAttachmentFingerprint, v))
}

// AttachmentFingerprintHasSuffix applies the HasSuffix predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldAttachmentFingerprint, v))
}

// AttachmentFingerprintIsNil applies the IsNil predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldAttachmentFingerprint))
}

// AttachmentFingerprintNotNil applies the NotNil predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldAttachmentFingerprint))
}

// AttachmentFingerprintEqualFold applies the EqualFold predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldAttachmentFingerprint, v))
}

// AttachmentFingerprintContainsFold applies the ContainsFold predicate on the "attachment_fingerprint" field.
func AttachmentFingerprintContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldAttachmentFingerprint, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCity applies the HasEdge predicate on the "city" edge.
func HasCity() predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CityTable, CityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCityWith applies the HasEdge predicate on the "city" edge with a given conditions (other predicates).
func HasCityWith(preds ...predicate.City) predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := newCityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCommittee applies the HasEdge predicate on the "committee" edge.
func HasCommittee() predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CommitteeTable, CommitteeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommitteeWith applies the HasEdge predicate on the "committee" edge with a given conditions (other predicates).
func HasCommitteeWith(preds ...predicate.Committee) predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := newCommitteeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.AgendaItem) predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAppearances applies the HasEdge predicate on the "appearances" edge.
func HasAppearances() predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AppearancesTable, AppearancesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppearancesWith applies the HasEdge predicate on the "appearances" edge with a given conditions (other predicates).
func HasAppearancesWith(preds ...predicate.MatterAppearance) predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := newAppearancesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.NotPredicates(p))
}
