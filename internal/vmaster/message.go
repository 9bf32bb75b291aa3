// Package vmaster declares the trade message schema bound by the xmlbind
// command.
package vmaster

import "github.com/jacoelho/xmlbind"

// DiaryEntry is one free-text note on a trade.
type DiaryEntry struct {
	xmlbind.Composite
	DiaryText *xmlbind.Leaf[string]
}

// NewDiaryEntry returns an unbound diary entry.
func NewDiaryEntry() *DiaryEntry {
	e := &DiaryEntry{DiaryText: xmlbind.String()}
	e.Insert("diaryText", e.DiaryText)
	return e
}

// Diary holds the diary entries of a trade in document order.
type Diary struct {
	xmlbind.Composite
	Entries *xmlbind.Group[*DiaryEntry]
}

// NewDiary returns an unbound diary.
func NewDiary() *Diary {
	d := &Diary{Entries: xmlbind.NewGroup(NewDiaryEntry)}
	d.Insert("vMasterDiaryEntry", d.Entries)
	return d
}

// Header carries the trade attributes.
type Header struct {
	xmlbind.Composite
	Instrument        *xmlbind.Leaf[string]
	TradeStatus       *xmlbind.Leaf[string]
	TradeDate         *xmlbind.Leaf[string]
	StartDate         *xmlbind.Leaf[string]
	RTLCReferenceCode *xmlbind.Leaf[string]
	EndDate           *xmlbind.Leaf[string]
	TradeOrigin       *xmlbind.Leaf[string]
	TradeOriginID     *xmlbind.Leaf[string]
	Trader            *xmlbind.Leaf[string]
	Coverage          *xmlbind.Leaf[string]
	Location          *xmlbind.Leaf[string]
	Book              *xmlbind.Leaf[string]
	UserLogin         *xmlbind.Leaf[string]
	BookLocation      *xmlbind.Leaf[string]
	BookDomicile      *xmlbind.Leaf[string]
	Entity            *xmlbind.Leaf[string]
	EntityCoperID     *xmlbind.Leaf[int]
	MLDPGuarantee     *xmlbind.Leaf[string]
	SwapClearFlag     *xmlbind.Leaf[string]
	CreditCode        *xmlbind.Leaf[string]
	Desk              *xmlbind.Leaf[string]
	RevisionDate      *xmlbind.Leaf[string]
	CreationDate      *xmlbind.Leaf[string]
	Diary             *Diary
}

// NewHeader returns an unbound header.
func NewHeader() *Header {
	h := &Header{
		Instrument:        xmlbind.String(),
		TradeStatus:       xmlbind.String(),
		TradeDate:         xmlbind.String(),
		StartDate:         xmlbind.String(),
		RTLCReferenceCode: xmlbind.String(),
		EndDate:           xmlbind.String(),
		TradeOrigin:       xmlbind.String(),
		TradeOriginID:     xmlbind.String(),
		Trader:            xmlbind.String(),
		Coverage:          xmlbind.String(),
		Location:          xmlbind.String(),
		Book:              xmlbind.String(),
		UserLogin:         xmlbind.String(),
		BookLocation:      xmlbind.String(),
		BookDomicile:      xmlbind.String(),
		Entity:            xmlbind.String(),
		EntityCoperID:     xmlbind.Int(),
		MLDPGuarantee:     xmlbind.String(),
		SwapClearFlag:     xmlbind.String(),
		CreditCode:        xmlbind.String(),
		Desk:              xmlbind.String(),
		RevisionDate:      xmlbind.String(),
		CreationDate:      xmlbind.String(),
		Diary:             NewDiary(),
	}
	h.Insert("vMasterInstrument", h.Instrument)
	h.Insert("vMasterTradeStatus", h.TradeStatus)
	h.Insert("vMasterTradeDate", h.TradeDate)
	h.Insert("vMasterStartDate", h.StartDate)
	h.Insert("RTLCReferenceCode", h.RTLCReferenceCode)
	h.Insert("vMasterEndDate", h.EndDate)
	h.Insert("vMasterTradeOrigin", h.TradeOrigin)
	h.Insert("vMasterTradeOriginID", h.TradeOriginID)
	h.Insert("vMasterTrader", h.Trader)
	h.Insert("vMasterCoverage", h.Coverage)
	h.Insert("vMasterLocation", h.Location)
	h.Insert("vMasterBook", h.Book)
	h.Insert("vMasterUserLogin", h.UserLogin)
	h.Insert("vMasterBookLocation", h.BookLocation)
	h.Insert("vMasterBookDomicile", h.BookDomicile)
	h.Insert("vMasterEntity", h.Entity)
	h.Insert("vMasterEntityCoperID", h.EntityCoperID)
	h.Insert("vMasterMLDPGuarantee", h.MLDPGuarantee)
	h.Insert("vMasterSwapclearFlag", h.SwapClearFlag)
	h.Insert("vMasterCreditCode", h.CreditCode)
	h.Insert("vMasterDesk", h.Desk)
	h.Insert("vMasterRevisionDate", h.RevisionDate)
	h.Insert("vMasterCreationDate", h.CreationDate)
	h.Insert("vMasterDiary", h.Diary)
	return h
}

// Message is the document root.
type Message struct {
	xmlbind.Composite
	Header *Header
}

// NewMessage returns an unbound message.
func NewMessage() *Message {
	m := &Message{Header: NewHeader()}
	m.Insert("vMasterHeader", m.Header)
	return m
}
