package usecase

import (
	"errors"
	"slices"
	"strings"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"
	"resident_service/pkg/clock"
)

var (
	ErrGuardFailed          = errors.New("step requirements not met")
	ErrFieldNotEditable     = errors.New("field not editable in current step")
	ErrStepActionNotAllowed = errors.New("action not available in current step")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrUnknownFixture       = errors.New("unknown fixture")
	ErrFixtureNotInCategory = errors.New("fixture does not belong to category")
	ErrInvalidPhotoRef      = errors.New("invalid photo reference")
	ErrPhotoLimitReached    = errors.New("photo limit reached")
	ErrUnknownCondition     = errors.New("condition not in fixture vocabulary")
	ErrFreeTextNotAccepted  = errors.New("fixture does not accept free text")
	ErrInvalidDate          = errors.New("date not bookable")
	ErrInvalidSlot          = errors.New("unknown time slot")
	ErrInvalidSwapPref      = errors.New("invalid swap preference")
	ErrSwapDisabled         = errors.New("swap preference requires swaps to be allowed")
)

// IntakeStep is a state of the intake machine.
type IntakeStep string

const (
	StepEvidence     IntakeStep = "evidence"
	StepDetails      IntakeStep = "details"
	StepConfirm      IntakeStep = "confirm"
	StepEditExisting IntakeStep = "edit_existing"
	stepClosed       IntakeStep = "closed"
)

// Evidence is what Step1 hands to Step2 once its guard passes.
type Evidence struct {
	Unit      string
	Category  string
	AreaKey   string
	AreaLabel string
	Photos    []string
}

// Details is what Step2 hands to Step3 once its guard passes.
type Details struct {
	Evidence
	Conditions []string
	OtherText  string
	Date       string
	Slot       string
	SwapOK     bool
	PartHint   string
}

type evidenceForm struct {
	category  string
	areaKey   string
	areaLabel string
	photos    []string
}

type detailsForm struct {
	// areaKey is the fixture the vocabulary below belongs to.
	areaKey    string
	conditions []string
	otherText  string
	date       string
	slot       string
	swapOK     bool
}

type confirmForm struct {
	swapPref entities.SwapPref
	remindOn bool
}

type editForm struct {
	original entities.Order
	date     string
	slot     string
	swapOK   bool
	swapPref entities.SwapPref
	remindOn bool
}

// IntakeMachine drives one booking from evidence to confirmation, or one
// edit of an existing order. It is not safe for concurrent use; the owning
// resident session serializes calls.
type IntakeMachine struct {
	catalog  interfaces.IFixtureCatalog
	clock    clock.Clock
	partHint func() string

	unit string
	step IntakeStep

	evidence evidenceForm
	details  detailsForm
	confirm  confirmForm
	edit     editForm

	sealedEvidence Evidence
	sealedDetails  Details
}

// NewIntake starts a fresh booking at Step1. partHint reports the advisory
// part suggestion current when Step2 is left; it may be nil.
func NewIntake(unit string, catalog interfaces.IFixtureCatalog, clk clock.Clock, partHint func() string) *IntakeMachine {
	return &IntakeMachine{
		catalog:  catalog,
		clock:    clk,
		partHint: partHint,
		unit:     unit,
		step:     StepEvidence,
		confirm:  confirmForm{swapPref: entities.SwapPrefEarly, remindOn: true},
	}
}

// NewEditIntake opens an existing order for rescheduling.
func NewEditIntake(order entities.Order, catalog interfaces.IFixtureCatalog, clk clock.Clock) *IntakeMachine {
	m := &IntakeMachine{
		catalog: catalog,
		clock:   clk,
		unit:    order.Unit,
		step:    StepEditExisting,
	}
	ef := editForm{
		original: order.Clone(),
		date:     order.Date,
		slot:     order.Slot,
		swapOK:   order.SwapOK,
		swapPref: order.SwapPref,
		remindOn: order.RemindOn,
	}
	if ef.date == "" {
		ef.date = entities.DateChoices(clk.Now())[0]
	}
	if ef.slot == "" {
		ef.slot = entities.DefaultEditSlot
	}
	if !ef.swapPref.Valid() {
		ef.swapPref = entities.SwapPrefEarly
	}
	m.edit = ef
	return m
}

// intakeCheckpoint is a copy of every input the machine holds.
type intakeCheckpoint struct {
	step           IntakeStep
	evidence       evidenceForm
	details        detailsForm
	confirm        confirmForm
	edit           editForm
	sealedEvidence Evidence
	sealedDetails  Details
}

func (m *IntakeMachine) checkpoint() intakeCheckpoint {
	cp := intakeCheckpoint{
		step:           m.step,
		evidence:       m.evidence,
		details:        m.details,
		confirm:        m.confirm,
		edit:           m.edit,
		sealedEvidence: m.sealedEvidence,
		sealedDetails:  m.sealedDetails,
	}
	cp.evidence.photos = slices.Clone(m.evidence.photos)
	cp.details.conditions = slices.Clone(m.details.conditions)
	cp.sealedEvidence.Photos = slices.Clone(m.sealedEvidence.Photos)
	cp.sealedDetails.Photos = slices.Clone(m.sealedDetails.Photos)
	cp.sealedDetails.Conditions = slices.Clone(m.sealedDetails.Conditions)
	return cp
}

func (m *IntakeMachine) rollback(cp intakeCheckpoint) {
	m.step = cp.step
	m.evidence = cp.evidence
	m.details = cp.details
	m.confirm = cp.confirm
	m.edit = cp.edit
	m.sealedEvidence = cp.sealedEvidence
	m.sealedDetails = cp.sealedDetails
}

// Apply runs several edits as one: if any of them fails, every input is
// put back the way it was before the first.
func (m *IntakeMachine) Apply(edits ...func(m *IntakeMachine) error) error {
	cp := m.checkpoint()
	for _, edit := range edits {
		if err := edit(m); err != nil {
			m.rollback(cp)
			return err
		}
	}
	return nil
}

func (m *IntakeMachine) Step() IntakeStep { return m.step }

// Draft projects the current inputs. Advisory fields are left empty; the
// advisory sessions own them.
func (m *IntakeMachine) Draft() entities.Draft {
	if m.step == StepEditExisting {
		o := m.edit.original
		return entities.Draft{
			ID:               o.ID,
			OrderNo:          o.OrderNo,
			CreatedAt:        o.CreatedAt,
			Unit:             o.Unit,
			AreaKey:          o.AreaKey,
			AreaLabel:        o.AreaLabel,
			Photos:           cloneTags(o.Photos),
			Conditions:       cloneTags(o.Conditions),
			OtherText:        o.OtherText,
			Date:             m.edit.date,
			Slot:             m.edit.slot,
			SwapOK:           m.edit.swapOK,
			SwapPref:         m.edit.swapPref,
			RemindOn:         m.edit.remindOn,
			AdvisoryPartHint: o.PartHint,
		}
	}

	d := entities.Draft{
		Unit:       m.unit,
		Category:   m.evidence.category,
		AreaKey:    m.evidence.areaKey,
		AreaLabel:  m.evidence.areaLabel,
		Photos:     cloneTags(m.evidence.photos),
		Conditions: cloneTags(m.details.conditions),
		OtherText:  m.details.otherText,
		Date:       m.details.date,
		Slot:       m.details.slot,
		SwapOK:     m.details.swapOK,
		SwapPref:   m.confirm.swapPref,
		RemindOn:   m.confirm.remindOn,
	}
	if m.step == StepConfirm {
		d.AdvisoryPartHint = m.sealedDetails.PartHint
	}
	return d
}

// CanAdvance evaluates the guard of the current step against the current
// inputs.
func (m *IntakeMachine) CanAdvance() bool {
	switch m.step {
	case StepEvidence:
		return CanLeaveEvidence(m.Draft())
	case StepDetails:
		return CanLeaveDetails(m.Draft(), m.Vocabulary())
	case StepConfirm:
		return true
	case StepEditExisting:
		return CanSaveEdit(m.Draft())
	default:
		return false
	}
}

// Vocabulary is the condition vocabulary of the selected fixture.
func (m *IntakeMachine) Vocabulary() []string {
	key := m.evidence.areaKey
	if m.step == StepEditExisting {
		key = m.edit.original.AreaKey
	}
	if key == "" {
		return nil
	}
	return m.catalog.Conditions(key)
}

// DateChoices lists the dates the current step accepts.
func (m *IntakeMachine) DateChoices() []string {
	choices := entities.DateChoices(m.clock.Now())
	if m.step == StepEditExisting {
		if d := m.edit.original.Date; d != "" && !entities.HasTag(choices, d) {
			choices = append(choices, d)
		}
	}
	return choices
}

// Step1 inputs.

func (m *IntakeMachine) SelectCategory(category string) error {
	if m.step != StepEvidence {
		return ErrFieldNotEditable
	}
	category = strings.TrimSpace(category)
	if !entities.HasTag(m.catalog.Categories(), category) {
		return ErrUnknownCategory
	}
	if category != m.evidence.category {
		m.evidence.category = category
		m.evidence.areaKey = ""
		m.evidence.areaLabel = ""
	}
	return nil
}

func (m *IntakeMachine) SelectFixture(key string) error {
	if m.step != StepEvidence {
		return ErrFieldNotEditable
	}
	fx, ok := m.catalog.ByKey(strings.TrimSpace(key))
	if !ok {
		return ErrUnknownFixture
	}
	if m.evidence.category != "" && fx.Category != m.evidence.category {
		return ErrFixtureNotInCategory
	}
	m.evidence.category = fx.Category
	m.evidence.areaKey = fx.Key
	m.evidence.areaLabel = fx.AreaLabel()
	return nil
}

// AddPhotos appends photo references up to the cap and reports how many
// were kept.
func (m *IntakeMachine) AddPhotos(refs ...string) (int, error) {
	if m.step != StepEvidence {
		return 0, ErrFieldNotEditable
	}
	for _, ref := range refs {
		if strings.TrimSpace(ref) == "" {
			return 0, ErrInvalidPhotoRef
		}
	}
	room := entities.MaxPhotos - len(m.evidence.photos)
	if room <= 0 {
		return 0, ErrPhotoLimitReached
	}
	if len(refs) > room {
		refs = refs[:room]
	}
	for _, ref := range refs {
		m.evidence.photos = append(m.evidence.photos, strings.TrimSpace(ref))
	}
	return len(refs), nil
}

func (m *IntakeMachine) RemoveLastPhoto() error {
	if m.step != StepEvidence {
		return ErrFieldNotEditable
	}
	if n := len(m.evidence.photos); n > 0 {
		m.evidence.photos = m.evidence.photos[:n-1]
	}
	return nil
}

// Step2 inputs.

func (m *IntakeMachine) ToggleCondition(tag string) error {
	if m.step != StepDetails {
		return ErrFieldNotEditable
	}
	if err := m.checkCondition(tag); err != nil {
		return err
	}
	for i, c := range m.details.conditions {
		if c == tag {
			m.details.conditions = append(m.details.conditions[:i:i], m.details.conditions[i+1:]...)
			return nil
		}
	}
	m.details.conditions = append(m.details.conditions, tag)
	return nil
}

// SetConditions replaces the selected condition set. Duplicates collapse
// to their first occurrence.
func (m *IntakeMachine) SetConditions(tags []string) error {
	if m.step != StepDetails {
		return ErrFieldNotEditable
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if err := m.checkCondition(tag); err != nil {
			return err
		}
		if !entities.HasTag(out, tag) {
			out = append(out, tag)
		}
	}
	m.details.conditions = out
	return nil
}

func (m *IntakeMachine) SetOtherText(text string) error {
	if m.step != StepDetails {
		return ErrFieldNotEditable
	}
	if strings.TrimSpace(text) != "" && !entities.HasTag(m.Vocabulary(), entities.ConditionOther) {
		return ErrFreeTextNotAccepted
	}
	m.details.otherText = text
	return nil
}

func (m *IntakeMachine) SetDate(date string) error {
	if m.step != StepDetails && m.step != StepEditExisting {
		return ErrFieldNotEditable
	}
	if !entities.HasTag(m.DateChoices(), date) {
		return ErrInvalidDate
	}
	if m.step == StepEditExisting {
		m.edit.date = date
	} else {
		m.details.date = date
	}
	return nil
}

func (m *IntakeMachine) SetSlot(slot string) error {
	if m.step != StepDetails && m.step != StepEditExisting {
		return ErrFieldNotEditable
	}
	if !entities.IsValidSlot(slot) {
		return ErrInvalidSlot
	}
	if m.step == StepEditExisting {
		m.edit.slot = slot
	} else {
		m.details.slot = slot
	}
	return nil
}

func (m *IntakeMachine) SetSwapOK(ok bool) error {
	switch m.step {
	case StepDetails:
		m.details.swapOK = ok
	case StepEditExisting:
		m.edit.swapOK = ok
	default:
		return ErrFieldNotEditable
	}
	return nil
}

// Step3 and edit inputs.

func (m *IntakeMachine) SetSwapPref(pref entities.SwapPref) error {
	if !pref.Valid() {
		return ErrInvalidSwapPref
	}
	switch m.step {
	case StepConfirm:
		if !m.sealedDetails.SwapOK {
			return ErrSwapDisabled
		}
		m.confirm.swapPref = pref
	case StepEditExisting:
		if !m.edit.swapOK {
			return ErrSwapDisabled
		}
		m.edit.swapPref = pref
	default:
		return ErrFieldNotEditable
	}
	return nil
}

func (m *IntakeMachine) SetRemindOn(on bool) error {
	switch m.step {
	case StepConfirm:
		m.confirm.remindOn = on
	case StepEditExisting:
		m.edit.remindOn = on
	default:
		return ErrFieldNotEditable
	}
	return nil
}

// Transitions.

// Next seals the current step and moves forward. A failed guard leaves
// the machine untouched.
func (m *IntakeMachine) Next() error {
	switch m.step {
	case StepEvidence:
		if !CanLeaveEvidence(m.Draft()) {
			return ErrGuardFailed
		}
		m.sealedEvidence = Evidence{
			Unit:      m.unit,
			Category:  m.evidence.category,
			AreaKey:   m.evidence.areaKey,
			AreaLabel: m.evidence.areaLabel,
			Photos:    cloneTags(m.evidence.photos),
		}
		m.enterDetails()
		m.step = StepDetails
		return nil

	case StepDetails:
		if !CanLeaveDetails(m.Draft(), m.Vocabulary()) {
			return ErrGuardFailed
		}
		m.sealedDetails = Details{
			Evidence:   m.sealedEvidence,
			Conditions: cloneTags(m.details.conditions),
			OtherText:  strings.TrimSpace(m.details.otherText),
			Date:       m.details.date,
			Slot:       m.details.slot,
			SwapOK:     m.details.swapOK,
			PartHint:   m.currentPartHint(),
		}
		m.step = StepConfirm
		return nil

	default:
		return ErrStepActionNotAllowed
	}
}

// Back returns to the previous step keeping what was entered there.
func (m *IntakeMachine) Back() error {
	switch m.step {
	case StepDetails:
		m.step = StepEvidence
	case StepConfirm:
		m.step = StepDetails
	default:
		return ErrStepActionNotAllowed
	}
	return nil
}

// Cancel discards a booking that has not left Step1.
func (m *IntakeMachine) Cancel() error {
	if m.step != StepEvidence {
		return ErrStepActionNotAllowed
	}
	m.step = stepClosed
	return nil
}

// Finish closes a fresh booking and returns the payload to insert.
func (m *IntakeMachine) Finish() (entities.OrderPayload, error) {
	if m.step != StepConfirm {
		return entities.OrderPayload{}, ErrStepActionNotAllowed
	}
	d := m.sealedDetails
	p := entities.OrderPayload{
		OrderNo:    OrderNumber(d.AreaKey, m.clock.Now()),
		Unit:       d.Unit,
		AreaKey:    d.AreaKey,
		AreaLabel:  d.AreaLabel,
		Photos:     cloneTags(d.Photos),
		Conditions: cloneTags(d.Conditions),
		OtherText:  d.OtherText,
		PartHint:   d.PartHint,
		Date:       d.Date,
		Slot:       d.Slot,
		SwapOK:     d.SwapOK,
		SwapPref:   m.confirm.swapPref,
		RemindOn:   m.confirm.remindOn,
	}
	m.step = stepClosed
	return p, nil
}

// Save closes an edit and returns the payload that replaces the original
// order.
func (m *IntakeMachine) Save() (entities.OrderPayload, error) {
	if m.step != StepEditExisting {
		return entities.OrderPayload{}, ErrStepActionNotAllowed
	}
	if !CanSaveEdit(m.Draft()) {
		return entities.OrderPayload{}, ErrGuardFailed
	}
	o := m.edit.original
	p := entities.OrderPayload{
		ID:         o.ID,
		OrderNo:    o.OrderNo,
		Unit:       o.Unit,
		AreaKey:    o.AreaKey,
		AreaLabel:  o.AreaLabel,
		Photos:     cloneTags(o.Photos),
		Conditions: cloneTags(o.Conditions),
		OtherText:  o.OtherText,
		PartHint:   o.PartHint,
		Date:       m.edit.date,
		Slot:       m.edit.slot,
		SwapOK:     m.edit.swapOK,
		SwapPref:   m.edit.swapPref,
		RemindOn:   m.edit.remindOn,
	}
	m.step = stepClosed
	return p, nil
}

// CancelOrder closes an edit and returns the ID of the order to delete.
// Unsaved edits are dropped.
func (m *IntakeMachine) CancelOrder() (string, error) {
	if m.step != StepEditExisting {
		return "", ErrStepActionNotAllowed
	}
	m.step = stepClosed
	return m.edit.original.ID, nil
}

// PartHintSnapshot is the advisory input of Step2.
func (m *IntakeMachine) PartHintSnapshot() entities.AdvisorySnapshot {
	return entities.AdvisorySnapshot{
		AreaKey:    m.evidence.areaKey,
		Conditions: cloneTags(m.details.conditions),
		OtherText:  strings.TrimSpace(m.details.otherText),
	}
}

// SummarySnapshot is the advisory input of Step3.
func (m *IntakeMachine) SummarySnapshot() entities.AdvisorySnapshot {
	d := m.sealedDetails
	return entities.AdvisorySnapshot{
		AreaKey:    d.AreaKey,
		Conditions: cloneTags(d.Conditions),
		OtherText:  d.OtherText,
		Unit:       d.Unit,
		PartHint:   d.PartHint,
	}
}

// enterDetails keeps Step2 inputs across a Back/Next round trip unless the
// fixture changed, in which case the old vocabulary no longer applies.
func (m *IntakeMachine) enterDetails() {
	if m.details.areaKey == m.sealedEvidence.AreaKey {
		return
	}
	m.details = detailsForm{
		areaKey: m.sealedEvidence.AreaKey,
		date:    entities.DateChoices(m.clock.Now())[0],
	}
}

func (m *IntakeMachine) checkCondition(tag string) error {
	if tag == entities.ConditionOther || !entities.HasTag(m.Vocabulary(), tag) {
		return ErrUnknownCondition
	}
	return nil
}

func (m *IntakeMachine) currentPartHint() string {
	if m.partHint != nil {
		if hint := strings.TrimSpace(m.partHint()); hint != "" {
			return hint
		}
	}
	if hint := m.catalog.PartHint(m.sealedEvidence.AreaKey); hint != "" {
		return hint
	}
	return PartHintOnSiteFallback
}

func cloneTags(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
