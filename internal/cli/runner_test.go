package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/warehouse-be/internal/adapters/memory"
	"github.com/ammerola/warehouse-be/internal/cli"
	"github.com/ammerola/warehouse-be/internal/core/services"
	"github.com/ammerola/warehouse-be/test/helpers"
)

func runScript(t *testing.T, script string) string {
	t.Helper()

	svc := services.NewWarehouseService(memory.NewClientStore(), memory.NewProductStore(), helpers.TestLogger())
	out := &bytes.Buffer{}
	runner := cli.NewRunner(svc, nil, strings.NewReader(script), out, helpers.TestLogger())

	require.NoError(t, runner.Run(context.Background()))
	return out.String()
}

// Walks a full session: the manager stocks a product, hands over to a
// clerk who registers a client, the client orders more than is in
// stock, and a later shipment drains the waitlisted remainder.
func TestRunner_FullSession(t *testing.T) {
	script := strings.Join([]string{
		"3",             // login as manager
		"1",             // add product
		"Claw Hammer",   //   name
		"18.50",         //   price
		"2",             //   initial stock
		"5",             // become clerk
		"1",             // add client
		"Ada Lovelace",  //   name
		"12 Main St",    //   address
		"6",             // become client
		"ada lovelace",  //   resolve by name, case-insensitive
		"4",             // add to wishlist
		"claw hammer",   //   resolve product by name
		"5",             //   quantity
		"6",             // place order: 2 fulfilled, 3 waitlisted
		"7",             // show waitlisted items
		"0",             // logout -> back to clerk
		"0",             // logout -> anonymous
		"3",             // login as manager
		"2",             // show product waitlist
		"P1",            //   by id
		"3",             // receive shipment
		"P1",            //   by id
		"3",             //   quantity, drains the waitlist
		"2",             //   show waitlist again
		"P1",            //
		"0",             // logout
		"0",             // exit
	}, "\n") + "\n"

	output := runScript(t, script)

	assert.Contains(t, output, "Added product with ID: P1")
	assert.Contains(t, output, "Added client with ID: C1")
	assert.Contains(t, output, "=== Client Menu (Client C1) ===")
	assert.Contains(t, output, "Order placed for client C1")
	assert.Contains(t, output, "- P1 (Claw Hammer) x 3")
	assert.Contains(t, output, "Client C1 waiting for 3")
	assert.Contains(t, output, "Shipment of 3 units received for Claw Hammer (P1).")
	assert.Contains(t, output, "No waitlist entries for product P1.")
	assert.Contains(t, output, "Exiting system. Goodbye.")
}

func TestRunner_DirectClientLoginAndLogout(t *testing.T) {
	script := strings.Join([]string{
		"2",            // login as clerk
		"1",            // add client
		"Ada Lovelace", //
		"12 Main St",   //
		"0",            // logout
		"1",            // login as client
		"C1",           //
		"1",            // show details
		"0",            // logout -> anonymous, not clerk
		"0",            // exit
	}, "\n") + "\n"

	output := runScript(t, script)

	assert.Contains(t, output, "Client ID: C1")
	assert.Contains(t, output, "Name: Ada Lovelace")
	assert.Contains(t, output, "Balance: $0.00")
	// after the client logout the opening menu shows again
	assert.Contains(t, output, "Exiting system. Goodbye.")
	assert.NotContains(t, output, "Invalid action for this state.")
}

func TestRunner_UnknownClientLoginStaysAnonymous(t *testing.T) {
	script := strings.Join([]string{
		"1",        // login as client
		"Nobody",   //
		"0",        // exit
	}, "\n") + "\n"

	output := runScript(t, script)

	assert.Contains(t, output, "Unknown client. Please check ID/name.")
	assert.NotContains(t, output, "=== Client Menu")
}

func TestRunner_InvalidMenuOption(t *testing.T) {
	script := "9\n0\n"

	output := runScript(t, script)

	assert.Contains(t, output, "Invalid option.")
	assert.Contains(t, output, "Exiting system. Goodbye.")
}

// Reports are optional; without a writer the manager menu hides the
// export entry and rejects its number.
func TestRunner_ExportHiddenWithoutReportWriter(t *testing.T) {
	script := strings.Join([]string{
		"3", // login as manager
		"4", // export, unavailable
		"0", // logout
		"0", // exit
	}, "\n") + "\n"

	output := runScript(t, script)

	assert.NotContains(t, output, "Export warehouse report")
	assert.Contains(t, output, "Invalid option.")
}

func TestRunner_EndOfInputExitsCleanly(t *testing.T) {
	output := runScript(t, "3\n")

	assert.Contains(t, output, "=== Manager Menu ===")
	assert.Contains(t, output, "Input closed. Exiting.")
}

// Malformed numeric input cancels the action instead of erroring out of
// the session.
func TestRunner_MalformedQuantityCancelsAction(t *testing.T) {
	script := strings.Join([]string{
		"3",           // login as manager
		"1",           // add product
		"Claw Hammer", //
		"18.50",       //
		"lots",        //   not a number
		"0",           // logout
		"0",           // exit
	}, "\n") + "\n"

	output := runScript(t, script)

	assert.Contains(t, output, "Invalid quantity. Product not added.")
	assert.NotContains(t, output, "Added product with ID")
}
