// Package player holds the per-ship game state that sits on top of a board:
// position, resource holdings, score and the actions left this turn. It also
// covers trading stations, the shop, and turn order.
//
// A Player only reads its board, through the Board interface, which
// *board.Board satisfies. Invalid moves, trades and purchases are results,
// not errors: the caller turns them into status text for the user.
package player
